package preset

import "github.com/sonnes/rangoli/core"

// Categories in display order.
var Categories = []string{
	"warm", "cool", "special", "neutral", "quirky", "brand", "trendy", "food", "countries",
}

func flag(name string, colors ...string) Preset {
	return Preset{Name: name, Colors: colors, Category: "countries", Interpolation: core.Discrete}
}

var builtin = []Preset{
	{Name: "Fire", Colors: []string{"#FF4500", "#FFD700"}, Category: "warm"},
	{Name: "Cherry", Colors: []string{"#8B0000", "#FF1493"}, Category: "warm"},
	{Name: "Copper", Colors: []string{"#8B4513", "#FF8C00", "#228B22"}, Category: "warm"},

	{Name: "Ocean", Colors: []string{"#006994", "#00D4FF"}, Category: "cool"},
	{Name: "Arctic", Colors: []string{"#E0F6FF", "#87CEFA"}, Category: "cool"},
	{Name: "Deep Sea", Colors: []string{"#191970", "#008080", "#00CED1"}, Category: "cool"},

	{Name: "Cyberpunk", Colors: []string{"#FF0080", "#00FFFF"}, Category: "special"},
	{Name: "Neon Glow", Colors: []string{"#39FF14", "#00FFFF"}, Category: "special"},
	{Name: "Matrix", Colors: []string{"#00FF00", "#008000"}, Category: "special"},
	{Name: "Synthwave", Colors: []string{"#FF00FF", "#00FFFF"}, Category: "special"},
	{Name: "Plasma", Colors: []string{"#8A2BE2", "#FF1493", "#FFFFFF"}, Category: "special"},
	{Name: "Lightning", Colors: []string{"#FFFF00", "#FFFFFF", "#87CEEB"}, Category: "special"},

	{Name: "Steel", Colors: []string{"#708090", "#C0C0C0"}, Category: "neutral"},
	{Name: "Ghost", Colors: []string{"#F8F8FF", "#DCDCDC"}, Category: "neutral"},
	{Name: "Sepia", Colors: []string{"#8B4513", "#DEB887", "#F5DEB3"}, Category: "neutral"},

	{Name: "Rainbow", Colors: []string{"#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#FF00FF"}, Category: "quirky"},
	{Name: "Cotton Candy", Colors: []string{"#FFB6C1", "#FF69B4", "#DA70D6"}, Category: "quirky"},
	{Name: "Galaxy", Colors: []string{"#4B0082", "#9400D3", "#FF1493", "#FFD700"}, Category: "quirky"},
	{Name: "Tropical", Colors: []string{"#FF6347", "#FFD700", "#ADFF2F"}, Category: "quirky"},
	{Name: "Unicorn", Colors: []string{"#FF69B4", "#DDA0DD", "#87CEEB", "#98FB98"}, Category: "quirky"},
	{Name: "Sunset Strip", Colors: []string{"#FF4500", "#FF6347", "#FFD700", "#FFA500"}, Category: "quirky"},
	{Name: "Aurora", Colors: []string{"#00FF7F", "#00FFFF", "#9370DB"}, Category: "quirky"},
	{Name: "Miami Vice", Colors: []string{"#FF0080", "#00FFFF", "#FF69B4"}, Category: "quirky"},
	{Name: "Forest", Colors: []string{"#006400", "#228B22", "#ADFF2F"}, Category: "quirky"},
	{Name: "Cherry Blossom", Colors: []string{"#FFB6C1", "#FFFFFF", "#FFC0CB"}, Category: "quirky"},
	{Name: "Coffee", Colors: []string{"#3C2415", "#8B4513", "#DEB887"}, Category: "quirky"},
	{Name: "Citrus", Colors: []string{"#FF8C00", "#FFFF00", "#32CD32"}, Category: "quirky"},

	{Name: "Spotify", Colors: []string{"#1DB954", "#191414"}, Category: "brand"},
	{Name: "Netflix", Colors: []string{"#E50914", "#221F1F"}, Category: "brand"},
	{Name: "YouTube", Colors: []string{"#FF0000", "#FFFFFF"}, Category: "brand"},
	{Name: "Instagram", Colors: []string{"#833AB4", "#FD1D1D", "#F77737"}, Category: "brand"},
	{Name: "TikTok", Colors: []string{"#FF0050", "#00F2EA"}, Category: "brand"},
	{Name: "Discord", Colors: []string{"#5865F2", "#2C2F33"}, Category: "brand"},
	{Name: "Twitter", Colors: []string{"#000000", "#1DA1F2"}, Category: "brand"},
	{Name: "Twitch", Colors: []string{"#9146FF", "#000000"}, Category: "brand"},

	{Name: "Labubu", Colors: []string{"#FF69B4", "#FFB6C1", "#E6E6FA"}, Category: "trendy"},
	{Name: "Matcha", Colors: []string{"#90EE90", "#228B22", "#006400"}, Category: "trendy"},
	{Name: "Dubai Chocolate", Colors: []string{"#8B4513", "#CD853F", "#FFD700"}, Category: "trendy"},
	{Name: "Barbie", Colors: []string{"#FF1493", "#FFB6C1", "#FF69B4"}, Category: "trendy"},
	{Name: "Cottagecore", Colors: []string{"#8FBC8F", "#F5DEB3", "#DDA0DD"}, Category: "trendy"},
	{Name: "Soft Girl", Colors: []string{"#FFB6C1", "#FFFACD", "#E6E6FA"}, Category: "trendy"},

	{Name: "Boba Tea", Colors: []string{"#D2B48C", "#F5DEB3", "#8B4513"}, Category: "food"},
	{Name: "Strawberry Milk", Colors: []string{"#FFB6C1", "#FFFFFF", "#FF69B4"}, Category: "food"},
	{Name: "Mint Chocolate", Colors: []string{"#98FB98", "#3C2415", "#FFFFFF"}, Category: "food"},

	flag("France", "#002395", "#FFFFFF", "#ED2939"),
	flag("Estonia", "#0072CE", "#000000", "#FFFFFF"),
	flag("Germany", "#000000", "#DE0000", "#FFCE00"),
	flag("Italy", "#009246", "#FFFFFF", "#CE2B37"),
	flag("Ukraine", "#005BBB", "#FFD500"),
	flag("Brazil", "#009739", "#FEDD00", "#012169"),
	flag("Spain", "#AA151B", "#F1BF00"),
	flag("Poland", "#FFFFFF", "#DC143C"),
	flag("Portugal", "#006600", "#FF0000"),
}
