package models

// Suggested product images per category, shown by the form's browse
// panel. Categories without an entry fall back to the Electronics set.
var SuggestedImages = map[string][]string{
	"Electronics": {
		"https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400",
		"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400",
		"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400",
	},
	"Clothing": {
		"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400",
		"https://images.unsplash.com/photo-1445205170230-053b83016050?w=400",
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400",
	},
	"Food & Beverages": {
		"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400",
		"https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400",
		"https://images.unsplash.com/photo-1482049016688-2d3e1b311543?w=400",
	},
	"Home & Garden": {
		"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
		"https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=400",
		"https://images.unsplash.com/photo-1484101403633-562f891dc89a?w=400",
	},
	"Sports & Fitness": {
		"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
		"https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400",
		"https://images.unsplash.com/photo-1538805060514-97d9cc17730c?w=400",
	},
}

const FallbackImageCategory = "Electronics"
