package catalog

import "storefront/internal/models"

// The catalog is fixed at build time. Products are never mutated or removed
// at runtime; display order follows this table.
var products = []models.Product{
	{
		ID:          "magic-wand-rech",
		Name:        "Magic Wand Rechargeable",
		Price:       119.95,
		Image:       "/products/magic-wand-rech.jpg",
		Description: "The legendary Magic Wand, now rechargeable. Delivers deep, rumbly vibrations for the ultimate massage experience.",
		Category:    "Massagers",
	},
	{
		ID:          "rose-vibe-2",
		Name:        "PinkCherry Rose Vibrator 2.0",
		Price:       24.95,
		Image:       "/products/rose-vibe-new.jpg",
		Description: "A beautiful rose-shaped suction vibrator offering intense air-pulse clitoral stimulation.",
		Category:    "Vibrators",
	},
	{
		ID:          "bunny-vibe-show",
		Name:        "Show Me the Bunny Vibe",
		Price:       39.95,
		Image:       "/products/bunny-vibe-new.jpg",
		Description: "Dual-action rabbit vibrator targeting both internal spots and the clitoris simultaneously.",
		Category:    "Vibrators",
	},
	{
		ID:          "edeny-panty",
		Name:        "Edeny Panty Vibe with App Control",
		Price:       49.95,
		Image:       "/products/edeny-panty.jpg",
		Description: "Discreet panty vibrator controlled via app. Perfect for solo fun or partner play anywhere.",
		Category:    "Vibrators",
	},
	{
		ID:          "bullet-vibe",
		Name:        "PinkCherry Bullet Vibe",
		Price:       11.90,
		Image:       "/products/bullet-vibe.jpg",
		Description: "Compact yet powerful bullet vibrator. Waterproof and perfect for pinpoint stimulation.",
		Category:    "Vibrators",
	},
	{
		ID:          "tulip-vibe",
		Name:        "G-Spot Tulip Vibrator",
		Price:       9.95,
		Image:       "/products/tulip-vibe.jpg",
		Description: "Elegant tulip-shaped vibrator curved specifically for precise G-spot stimulation.",
		Category:    "Vibrators",
	},
	{
		ID:          "gluck-stroker",
		Name:        "Gluck Gluck 9000 Stroker",
		Price:       59.95,
		Image:       "/products/gluck-stroker.jpg",
		Description: "Advanced thrusting stroker designed to take male pleasure to the next level with varied speeds.",
		Category:    "Male Toys",
	},
	{
		ID:          "sasha-stroker",
		Name:        "Sasha Grey's Auto Stroker",
		Price:       69.95,
		Image:       "/products/sasha-stroker.jpg",
		Description: "Realistic automated stroker designed by Sasha Grey for an immersive experience.",
		Category:    "Male Toys",
	},
	{
		ID:          "moto-bator",
		Name:        "PDX Elite Moto Bator 2",
		Price:       79.95,
		Image:       "/products/moto-bator.jpg",
		Description: "Next-gen masturbator with powerful rumbling motor and textured internal sleeve.",
		Category:    "Male Toys",
	},
	{
		ID:          "strapon-set",
		Name:        "New Comers Strap-On Set",
		Price:       29.95,
		Image:       "/products/strapon-set.jpg",
		Description: "Complete strap-on harness and dildo set. Comfortable, adjustable, and perfect for beginners.",
		Category:    "Dildos",
	},
	{
		ID:          "magic-wand-orig",
		Name:        "The Original Magic Wand",
		Price:       69.95,
		Image:       "/products/magic-wand-orig.jpg",
		Description: "The classic plug-in power source for deep muscle relief and intense pleasure.",
		Category:    "Massagers",
	},
	{
		ID:          "magic-wand-plus",
		Name:        "Magic Wand Plus",
		Price:       79.95,
		Image:       "/products/magic-wand-plus.jpg",
		Description: "The versatile Magic Wand Plus with variable speed control and removable power cord.",
		Category:    "Massagers",
	},
	{
		ID:          "cuffs-furry",
		Name:        "Black Furry Hand Cuffs",
		Price:       6.95,
		Image:       "/products/cuffs.jpg",
		Description: "Soft, comfortable faux-fur handcuffs for light bondage and exploring new fantasies.",
		Category:    "Bondage",
	},
	{
		ID:          "twig-cring",
		Name:        "Twig & Berries C-Ring",
		Price:       6.95,
		Image:       "/products/twig-cring.jpg",
		Description: "Stretchy, durable cock ring designed to enhance endurance and sensitivity for couples.",
		Category:    "Couple's Play",
	},
	{
		ID:          "pc-lube-2oz",
		Name:        "PinkCherry Water Based Lube (2oz)",
		Price:       3.95,
		Image:       "/products/pc-lube-2oz.jpg",
		Description: "Silky smooth water-based lubricant. Non-sticky, body-safe, and easy to clean.",
		Category:    "Lubricants",
	},
	{
		ID:          "jelle-anal",
		Name:        "Jelle Plus Anal Lubricant",
		Price:       11.97,
		Image:       "/products/jelle-anal-lube.jpg",
		Description: "Thicker, cushiony formula designed specifically for anal play comfort and longevity.",
		Category:    "Lubricants",
	},
	{
		ID:          "coconut-lube",
		Name:        "PinkCherry Coconut Oil Lube",
		Price:       11.99,
		Image:       "/products/coconut-lube.jpg",
		Description: "Natural organic coconut oil lubricant. Moisturizing, edible, and delicious.",
		Category:    "Lubricants",
	},
	{
		ID:          "on-insane",
		Name:        "ON Insane Arousal Lube",
		Price:       14.99,
		Image:       "/products/on-insane-lube.jpg",
		Description: "Intense tingling sensation lubricant for heightened arousal and sensitivity.",
		Category:    "Lubricants",
	},
	{
		ID:          "bj-blast",
		Name:        "BJ Blast Cherry (18g)",
		Price:       2.39,
		Image:       "/products/bj-blast.jpg",
		Description: "Fun and flavorful popping crystals to add a sparkling sensation to oral play.",
		Category:    "Essentials",
	},
	{
		ID:          "rose-bundle",
		Name:        "Rose Vibe + Lube Bundle",
		Price:       28.50,
		Image:       "/products/rose-vibe-new.jpg",
		Description: "The perfect starter kit: Our best-selling Rose Vibrator paired with a travel-size water-based lube.",
		Category:    "Bundles",
	},
}
