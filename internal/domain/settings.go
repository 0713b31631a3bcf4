package domain

// SocialLinks holds the social media URLs shown in the storefront footer.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Tiktok    string `json:"tiktok,omitempty"`
}

// SEOMeta holds the page metadata rendered into the document head.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// SiteSettings is the singleton site configuration record. Partial updates
// merge at the top level only; SocialLinks and SEO are replaced wholesale
// when present in a patch, callers pre-merge if they want field-level edits.
type SiteSettings struct {
	SiteName              string      `json:"siteName"`
	SiteDescription       string      `json:"siteDescription"`
	Logo                  string      `json:"logo,omitempty"`
	Favicon               string      `json:"favicon,omitempty"`
	PrimaryColor          string      `json:"primaryColor"`
	SecondaryColor        string      `json:"secondaryColor"`
	WhatsappNumber        string      `json:"whatsappNumber"`
	PhoneNumber           string      `json:"phoneNumber"`
	Email                 string      `json:"email"`
	Address               string      `json:"address"`
	FreeShippingThreshold float64     `json:"freeShippingThreshold"`
	ShippingCost          float64     `json:"shippingCost"`
	EnableCOD             bool        `json:"enableCOD"`
	EnableOnlinePayment   bool        `json:"enableOnlinePayment"`
	EnableWallet          bool        `json:"enableWallet"`
	WalletNumber          string      `json:"walletNumber"`
	SocialLinks           SocialLinks `json:"socialLinks"`
	SEO                   SEOMeta     `json:"seo"`
}
