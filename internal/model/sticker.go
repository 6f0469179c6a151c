package model

// Sticker: элемент словаря диетических тегов.
type Sticker struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Stickers: известный словарь в порядке отображения.
var Stickers = []Sticker{
	{Value: "gluten_free", Label: "GF"},
	{Value: "pescatarian", Label: "Pesc"},
	{Value: "vegetarian", Label: "Veg"},
	{Value: "vegan", Label: "Vegan"},
	{Value: "keto_friendly", Label: "Keto"},
	{Value: "dairy_free", Label: "Dairy-Free"},
	{Value: "nut_free", Label: "Nut-Free"},
	{Value: "low_glycemic", Label: "Low-GI"},
}

// StickerLabel возвращает подпись тега; для неизвестного значения: само значение.
func StickerLabel(value string) string {
	for _, s := range Stickers {
		if s.Value == value {
			return s.Label
		}
	}
	return value
}

// IsKnownSticker сообщает, входит ли тег в словарь.
func IsKnownSticker(value string) bool {
	for _, s := range Stickers {
		if s.Value == value {
			return true
		}
	}
	return false
}
