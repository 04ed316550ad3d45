// Package data holds the static sample catalog. In production this content
// would come from a database or an upstream API; the shapes are the same.
package data

import "tienda/internal/models"

// Products returns the sample catalog in display order.
func Products() []models.Product {
	return []models.Product{
		{
			ID:               "sku-000123",
			Title:            "Deku Action Figure 1/8",
			Subtitle:         "2024 Official Release",
			DescriptionShort: "PVC figure, 25cm, themed base included.",
			DescriptionLong:  "Highly detailed PVC action figure featuring Izuku Midoriya (Deku) from My Hero Academia in his hero costume. Includes interchangeable hands, facial expressions, and a themed display base with LED effects.",
			Categories:       []string{"manga", "figures"},
			Tags:             []string{"limited", "collectible", "my-hero-academia"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   1499.00,
			Currency:         "MXN",
			Stock:            3,
			Attributes: models.ProductAttributes{
				"material":        "PVC",
				"height_cm":       25,
				"manufacturer":    "GoodToy Co.",
				"series":          "My Hero Academia",
				"character":       "Izuku Midoriya",
				"limited_edition": true,
			},
		},
		{
			ID:               "sku-000124",
			Title:            "Naruto Shippuden Collectors Box Set",
			Subtitle:         "Complete Series Blu-ray",
			DescriptionShort: "All 500 episodes in premium quality with exclusive artwork book.",
			DescriptionLong:  "The ultimate collection for Naruto fans! This premium box set includes all 500 episodes of Naruto Shippuden on Blu-ray, featuring remastered audio and video, behind-the-scenes content, and a 120-page exclusive artwork book with character designs and creator interviews.",
			Categories:       []string{"anime", "media"},
			Tags:             []string{"complete-series", "collectors", "naruto"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   3999.00,
			Currency:         "MXN",
			Stock:            8,
			Attributes: models.ProductAttributes{
				"manufacturer": "Viz Media",
				"series":       "Naruto Shippuden",
				"release_date": "2024-01",
			},
		},
		{
			ID:               "sku-000125",
			Title:            "Demon Slayer Tanjiro Sword Replica",
			Subtitle:         "Full-Size Nichirin Blade",
			DescriptionShort: "1:1 scale replica of Tanjiro's signature sword, 104cm length.",
			DescriptionLong:  "An authentic replica of Tanjiro Kamado's Nichirin blade from Demon Slayer. This full-size 104cm sword features detailed engraving, a weathered finish, and comes with a display stand. Made from high-quality zinc alloy with a safe, dull edge.",
			Categories:       []string{"weapons", "collectibles"},
			Tags:             []string{"demon-slayer", "replica", "display"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   2299.00,
			Currency:         "MXN",
			Stock:            5,
			Attributes: models.ProductAttributes{
				"material":     "Zinc Alloy",
				"height_cm":    104,
				"weight_g":     850,
				"manufacturer": "Anime Replicas Inc.",
				"series":       "Demon Slayer",
				"character":    "Tanjiro Kamado",
			},
		},
		{
			ID:               "sku-000126",
			Title:            "Attack on Titan Survey Corps Jacket",
			Subtitle:         "Premium Cosplay Costume",
			DescriptionShort: "Official licensed Survey Corps jacket with embroidered wings of freedom.",
			DescriptionLong:  "Step into the world of Attack on Titan with this premium Survey Corps jacket. Features accurate embroidery, adjustable straps, multiple pockets, and high-quality fabric. Available in multiple sizes for the perfect fit. Officially licensed merchandise.",
			Categories:       []string{"clothing", "cosplay"},
			Tags:             []string{"attack-on-titan", "licensed", "cosplay"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   1899.00,
			Currency:         "MXN",
			Stock:            12,
			Attributes: models.ProductAttributes{
				"material":     "Cotton Blend",
				"manufacturer": "Official Merchandise Co.",
				"series":       "Attack on Titan",
			},
		},
		{
			ID:               "sku-000127",
			Title:            "One Piece Thousand Sunny Model Ship",
			Subtitle:         "Grand Ship Collection",
			DescriptionShort: "Highly detailed plastic model kit of the Straw Hat Pirates' ship.",
			DescriptionLong:  "Build your own Thousand Sunny! This premium model kit features over 200 pieces, detailed interior sections, movable parts, and display stand. Includes water-slide decals and painting guide. Scale 1:400. Perfect for collectors and model enthusiasts.",
			Categories:       []string{"models", "collectibles"},
			Tags:             []string{"one-piece", "model-kit", "ship"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   1699.00,
			Currency:         "MXN",
			Stock:            6,
			Attributes: models.ProductAttributes{
				"material":     "Plastic",
				"height_cm":    30,
				"manufacturer": "Bandai",
				"series":       "One Piece",
			},
		},
		{
			ID:               "sku-000128",
			Title:            "Jujutsu Kaisen Gojo Nendoroid",
			Subtitle:         "Cute Chibi Figure",
			DescriptionShort: "Adorable chibi-style Satoru Gojo with interchangeable parts.",
			DescriptionLong:  "The strongest sorcerer in cute Nendoroid form! This figure features Satoru Gojo with multiple facial expressions, hand parts, and accessories including his blindfold and Infinite Void effect parts. Fully poseable with Nendoroid joints.",
			Categories:       []string{"figures", "nendoroid"},
			Tags:             []string{"jujutsu-kaisen", "chibi", "gojo"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   899.00,
			Currency:         "MXN",
			Stock:            15,
			Attributes: models.ProductAttributes{
				"material":     "ABS & PVC",
				"height_cm":    10,
				"manufacturer": "Good Smile Company",
				"series":       "Jujutsu Kaisen",
				"character":    "Satoru Gojo",
			},
		},
		{
			ID:               "sku-000129",
			Title:            "Dragon Ball Z Capsule Corp Backpack",
			Subtitle:         "Premium Gaming/Travel Bag",
			DescriptionShort: "Spacious backpack with Capsule Corp logo, USB charging port included.",
			DescriptionLong:  "Carry your gear in style with this premium Capsule Corp backpack. Features padded laptop compartment (up to 15.6\"), multiple organizational pockets, water-resistant material, USB charging port, and ergonomic shoulder straps. Perfect for gamers, students, and DBZ fans.",
			Categories:       []string{"accessories", "bags"},
			Tags:             []string{"dragon-ball-z", "practical", "licensed"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   1299.00,
			Currency:         "MXN",
			Stock:            20,
			Attributes: models.ProductAttributes{
				"material":     "Polyester",
				"manufacturer": "Official Merchandise Co.",
				"series":       "Dragon Ball Z",
			},
		},
		{
			ID:               "sku-000130",
			Title:            "Pokemon Charizard VMAX Card",
			Subtitle:         "Rainbow Rare Secret",
			DescriptionShort: "Ultra-rare rainbow secret rare from Champions Path, mint condition.",
			DescriptionLong:  "One of the most sought-after Pokemon cards! This Rainbow Rare Charizard VMAX from the Champions Path set is professionally graded, stored in a protective case, and guaranteed authentic. Perfect addition to any serious collection.",
			Categories:       []string{"cards", "collectibles"},
			Tags:             []string{"pokemon", "ultra-rare", "investment"},
			Images:           []string{"/placeholder.svg"},
			PriceSuggested:   8999.00,
			Currency:         "MXN",
			Stock:            2,
			Attributes: models.ProductAttributes{
				"manufacturer":    "The Pokemon Company",
				"series":          "Pokemon TCG",
				"character":       "Charizard",
				"limited_edition": true,
			},
		},
	}
}

// Categories returns the category reference list, including the "all" sentinel.
func Categories() []models.Category {
	return []models.Category{
		{ID: "all", Name: "All Products", Slug: "all", Icon: "Grid3x3"},
		{ID: "figures", Name: "Figures", Slug: "figures", Icon: "Users", Description: "Action figures, statues, and collectible figures"},
		{ID: "manga", Name: "Manga & Comics", Slug: "manga", Icon: "Book", Description: "Manga volumes, comics, and graphic novels"},
		{ID: "anime", Name: "Anime", Slug: "anime", Icon: "Film", Description: "Anime DVDs, Blu-rays, and merchandise"},
		{ID: "models", Name: "Model Kits", Slug: "models", Icon: "Box", Description: "Gunpla and other model kits"},
		{ID: "clothing", Name: "Apparel", Slug: "clothing", Icon: "Shirt", Description: "T-shirts, hoodies, and cosplay costumes"},
		{ID: "accessories", Name: "Accessories", Slug: "accessories", Icon: "Watch", Description: "Bags, keychains, and other accessories"},
		{ID: "cards", Name: "Trading Cards", Slug: "cards", Icon: "CreditCard", Description: "Pokemon, Yu-Gi-Oh!, and other TCG"},
		{ID: "collectibles", Name: "Collectibles", Slug: "collectibles", Icon: "Star", Description: "Limited editions and rare items"},
	}
}

// Store returns the storefront profile.
func Store() models.StoreInfo {
	return models.StoreInfo{
		Name:        "Otaku Haven",
		Tagline:     "Your Premium Geek & Anime Collectibles Store",
		Description: "Welcome to Otaku Haven! We specialize in authentic anime figures, manga, collectibles, and exclusive merchandise from your favorite series. Every item is carefully curated and verified for authenticity.",
		Contact: models.StoreContact{
			Whatsapp: "+52-555-123-4567",
			Email:    "hello@otakuhaven.com",
			Social: &models.StoreSocial{
				Instagram: "@otakuhaven",
				Twitter:   "@otakuhaven",
				Facebook:  "OtakuHavenMX",
			},
		},
		BusinessHours: "Mon-Sat: 10:00 AM - 8:00 PM",
		Location:      "Mexico City, Mexico",
	}
}

// News returns the storefront news articles, newest first.
func News() []models.NewsArticle {
	return []models.NewsArticle{
		{
			Slug:     "nuevos-lanzamientos-mayo-2024",
			Title:    "Nuevos lanzamientos de Mayo 2024",
			Excerpt:  "Descubre las últimas figuras y productos que acaban de llegar a nuestra tienda.",
			Content:  "<p>Este mes estamos emocionados de presentar una increíble colección de nuevos productos que harán felices a todos los fanáticos del anime y manga.</p><h2>Figuras destacadas</h2><p>Entre los lanzamientos más esperados tenemos la nueva línea de figuras de My Hero Academia, incluyendo una edición especial de Deku con base temática y efectos intercambiables.</p><h2>Mangas y cómics</h2><p>También recibimos los últimos tomos de series populares como Demon Slayer, One Piece y Jujutsu Kaisen.</p><p>Visita nuestra tienda para ver todos los nuevos productos disponibles.</p>",
			Date:     "2024-05-15",
			Image:    "/images/news/mayo-2024.jpg",
			Category: "Lanzamientos",
		},
		{
			Slug:     "guia-cuidado-figuras",
			Title:    "Guía para el cuidado de tus figuras coleccionables",
			Excerpt:  "Aprende cómo mantener tus figuras en perfecto estado con estos consejos profesionales.",
			Content:  "<p>Las figuras coleccionables son una inversión y es importante cuidarlas adecuadamente para mantener su valor y apariencia.</p><h2>Ubicación adecuada</h2><p>Evita colocar tus figuras en lugares con luz solar directa, ya que puede decolorar los materiales. Busca un lugar fresco y seco.</p><h2>Limpieza regular</h2><p>Usa un pincel suave o aire comprimido para remover el polvo. Para manchas difíciles, un paño húmedo suave es suficiente.</p><h2>Almacenamiento</h2><p>Si necesitas guardar tus figuras, conserva las cajas originales y usa protección adicional para piezas delicadas.</p>",
			Date:     "2024-05-10",
			Image:    "/images/news/cuidado-figuras.jpg",
			Category: "Guías",
		},
		{
			Slug:     "eventos-anime-2024",
			Title:    "Eventos de anime confirmados para 2024",
			Excerpt:  "Los mejores eventos de anime y cultura otaku que no te puedes perder este año.",
			Content:  "<p>Este año promete ser increíble para los fanáticos del anime con varios eventos importantes programados.</p><h2>Convenciones principales</h2><p>La TNT Comic Con regresa en junio con invitados especiales y exclusivas de figuras. También se confirmó la Expo TNT para noviembre.</p><h2>Proyecciones especiales</h2><p>Varios cines programaron proyecciones especiales de películas de anime, incluyendo estrenos y clásicos remasterizados.</p><p>Mantente atento a nuestras redes sociales para más información sobre estos eventos.</p>",
			Date:     "2024-05-05",
			Image:    "/images/news/eventos-2024.jpg",
			Category: "Eventos",
		},
	}
}
