package store

import (
	"time"

	"github.com/yazanstore/storefront/internal/domain"
	"go.uber.org/zap"
)

// DefaultAdminPassword is the seeded global credential.
const DefaultAdminPassword = "admin123"

// Initialize seeds first-run default data. Each key is seeded only when it
// is entirely absent; a key that already exists is left untouched even if
// its contents are partial. Orders and the cart are never seeded.
func (d *Database) Initialize() {
	if d.kv.Disabled() {
		return
	}
	if !d.kv.Has(KeyProducts) {
		d.Products.SetAll(defaultProducts())
		zap.L().Info("seeded default products")
	}
	if !d.kv.Has(KeyCategories) {
		d.Categories.SetAll(defaultCategories())
		zap.L().Info("seeded default categories")
	}
	if !d.kv.Has(KeySliderImages) {
		d.SliderImages.SetAll(defaultSliderImages())
		zap.L().Info("seeded default slider images")
	}
	if !d.kv.Has(KeyAnnouncements) {
		d.Announcements.SetAll(defaultAnnouncements())
		zap.L().Info("seeded default announcement")
	}
	if !d.kv.Has(KeySettings) {
		d.kv.Set(KeySettings, DefaultSettings())
		zap.L().Info("seeded default settings")
	}
	if !d.kv.Has(KeyAdminUsers) {
		d.Auth.users.SetAll(defaultAdminUsers())
		zap.L().Info("seeded default admin user", zap.String("username", "admin"))
	}
	if !d.kv.Has(KeyAdminPassword) {
		d.Auth.setPassword(DefaultAdminPassword)
		zap.L().Info("seeded default admin credential")
	}
}

// DefaultSettings are the built-in site settings, also returned by
// SettingsStore.Get before first persist.
func DefaultSettings() domain.SiteSettings {
	return domain.SiteSettings{
		SiteName:              "Yazan Store",
		SiteDescription:       "أزياء وأحذية وإكسسوارات بأسلوب عصري",
		PrimaryColor:          "#2B66E7",
		SecondaryColor:        "#111111",
		WhatsappNumber:        "+201234567890",
		PhoneNumber:           "+201234567890",
		Email:                 "info@yazanstore.com",
		Address:               "القاهرة، مصر",
		FreeShippingThreshold: 2000,
		ShippingCost:          50,
		EnableCOD:             true,
		EnableOnlinePayment:   true,
		EnableWallet:          true,
		WalletNumber:          "01012345678",
		SocialLinks: domain.SocialLinks{
			Facebook:  "https://facebook.com/yazanstore",
			Instagram: "https://instagram.com/yazanstore",
		},
		SEO: domain.SEOMeta{
			Title:       "Yazan Store | يازان ستور",
			Description: "أزياء وأحذية وإكسسوارات بأسلوب عصري",
			Keywords:    "ملابس, أحذية, إكسسوارات, موضة, تسوق",
		},
	}
}

func defaultCategories() []*domain.Category {
	return []*domain.Category{
		{
			ID:          "cat-1",
			Name:        "ملابس",
			Slug:        domain.CategoryClothes,
			Image:       "https://images.unsplash.com/photo-1556905055-8f358a7a47b2?w=600&h=900&fit=crop",
			Description: "أحدث صيحات الموضة في عالم الملابس",
			IsActive:    true,
		},
		{
			ID:          "cat-2",
			Name:        "أحذية",
			Slug:        domain.CategoryShoes,
			Image:       "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=600&h=900&fit=crop",
			Description: "تشكيلة واسعة من الأحذية العصرية",
			IsActive:    true,
		},
		{
			ID:          "cat-3",
			Name:        "إكسسوارات",
			Slug:        domain.CategoryAccessories,
			Image:       "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=600&h=900&fit=crop",
			Description: "إكسسوارات أنيقة تكمل إطلالتك",
			IsActive:    true,
		},
	}
}

func defaultProducts() []*domain.Product {
	now := time.Now()
	products := []*domain.Product{
		{
			ID:            "prod-1",
			Name:          "قميص أبيض كلاسيكي",
			Price:         799,
			OriginalPrice: 999,
			Image:         "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=600&h=800&fit=crop",
			Category:      domain.CategoryClothes,
			Description:   "قميص أبيض أنيق مناسب للمناسبات الرسمية والعمل",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"أبيض", "أزرق فاتح"},
			Featured:      true,
		},
		{
			ID:          "prod-2",
			Name:        "بنطال كحلي أنيق",
			Price:       999,
			Image:       "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=600&h=800&fit=crop",
			Category:    domain.CategoryClothes,
			Description: "بنطال كحلي بقصة عصرية وجودة عالية",
			Sizes:       []string{"30", "32", "34", "36", "38"},
			Colors:      []string{"كحلي", "أسود", "رمادي"},
			Featured:    true,
		},
		{
			ID:            "prod-3",
			Name:          "حذاء كلاسيكي جلد",
			Price:         1299,
			OriginalPrice: 1599,
			Image:         "https://images.unsplash.com/photo-1449505278894-297fdb3edbc1?w=600&h=800&fit=crop",
			Category:      domain.CategoryShoes,
			Description:   "حذاء كلاسيكي من الجلد الطبيعي",
			Sizes:         []string{"40", "41", "42", "43", "44", "45"},
			Colors:        []string{"أسود", "بني"},
			Featured:      true,
		},
		{
			ID:          "prod-4",
			Name:        "ساعة أنيقة",
			Price:       899,
			Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=600&h=800&fit=crop",
			Category:    domain.CategoryAccessories,
			Description: "ساعة يد أنيقة بتصميم عصري",
			Colors:      []string{"فضي", "ذهبي", "أسود"},
			Featured:    true,
		},
		{
			ID:          "prod-5",
			Name:        "جاكيت جلد عصري",
			Price:       1499,
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=600&h=800&fit=crop",
			Category:    domain.CategoryClothes,
			Description: "جاكيت جلد بقصة عصرية وأنيقة",
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Colors:      []string{"أسود", "بني"},
			Featured:    true,
			IsNew:       true,
		},
		{
			ID:          "prod-6",
			Name:        "حذاء رياضي أبيض",
			Price:       1199,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=800&fit=crop",
			Category:    domain.CategoryShoes,
			Description: "حذاء رياضي مريح بتصميم عصري",
			Sizes:       []string{"40", "41", "42", "43", "44", "45"},
			Colors:      []string{"أبيض", "أسود", "رمادي"},
			IsNew:       true,
		},
		{
			ID:            "prod-7",
			Name:          "نظارة شمسية",
			Price:         599,
			OriginalPrice: 799,
			Image:         "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600&h=800&fit=crop",
			Category:      domain.CategoryAccessories,
			Description:   "نظارة شمسية بإطار معدني أنيق",
			Colors:        []string{"ذهبي", "فضي", "أسود"},
		},
		{
			ID:          "prod-8",
			Name:        "حزام جلد",
			Price:       399,
			Image:       "https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=600&h=800&fit=crop",
			Category:    domain.CategoryAccessories,
			Description: "حزام جلد طبيعي بإبزيم معدني",
			Sizes:       []string{"90", "100", "110", "120"},
			Colors:      []string{"بني", "أسود"},
		},
		{
			ID:          "prod-9",
			Name:        "تيشيرت قطن",
			Price:       349,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&h=800&fit=crop",
			Category:    domain.CategoryClothes,
			Description: "تيشيرت قطن 100% مريح وناعم",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"أبيض", "أسود", "رمادي", "كحلي"},
		},
		{
			ID:          "prod-10",
			Name:        "حذاء رسمي",
			Price:       1099,
			Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=600&h=800&fit=crop",
			Category:    domain.CategoryShoes,
			Description: "حذاء رسمي أنيق للمناسبات الخاصة",
			Sizes:       []string{"40", "41", "42", "43", "44", "45"},
			Colors:      []string{"أسود", "بني"},
		},
	}
	for _, p := range products {
		p.InStock = true
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	return products
}

func defaultSliderImages() []*domain.SliderImage {
	return []*domain.SliderImage{
		{
			ID:       "slide-1",
			Image:    "https://images.unsplash.com/photo-1617137968427-85924c800a22?w=1200&h=600&fit=crop",
			Title:    "تشكيلة جديدة",
			Subtitle: "اكتشف أحدث صيحات الموضة",
			Link:     "#products",
			Order:    1,
			IsActive: true,
		},
		{
			ID:       "slide-2",
			Image:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1200&h=600&fit=crop",
			Title:    "عروض حصرية",
			Subtitle: "خصومات تصل إلى 30%",
			Link:     "#featured-products",
			Order:    2,
			IsActive: true,
		},
	}
}

func defaultAnnouncements() []*domain.Announcement {
	return []*domain.Announcement{
		{
			ID:       "ann-1",
			Message:  "🚚 التوصيل مجاني للطلبات فوق 2000 جنيه",
			IsActive: true,
		},
	}
}

func defaultAdminUsers() []*domain.AdminUser {
	return []*domain.AdminUser{
		{
			ID:        "admin-1",
			Username:  "admin",
			Name:      "المشرف",
			Email:     "admin@yazanstore.com",
			Role:      domain.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now(),
		},
	}
}
