package model

// Category is a fixed, named group of phonetic symbols.
// The four built-in categories are defined at compile time and never
// change at runtime; identity is the Name field.
type Category struct {
	Name    string   // stable identifier, e.g. "vowels"
	Title   string   // display title, e.g. "Vowels"
	Symbols []string // ordered glyphs; not user-editable
}

// Canonical category names. These double as the permutation universe
// for the persisted category order.
const (
	CategoryVowels          = "vowels"
	CategoryConsonants      = "consonants"
	CategoryDiacritics      = "diacritics"
	CategorySuprasegmentals = "suprasegmentals"
)

// categories holds the built-in inventory in default display order.
var categories = []Category{
	{
		Name:  CategoryVowels,
		Title: "Vowels",
		Symbols: []string{
			"i", "y", "ɨ", "ʉ", "ɯ", "u",
			"ɪ", "ʏ", "ʊ",
			"e", "ø", "ɘ", "ɵ", "ɤ", "o",
			"ə",
			"ɛ", "œ", "ɜ", "ɞ", "ʌ", "ɔ",
			"æ", "ɐ",
			"a", "ɶ", "ɑ", "ɒ",
		},
	},
	{
		Name:  CategoryConsonants,
		Title: "Consonants",
		Symbols: []string{
			"p", "b", "t", "d", "ʈ", "ɖ", "c", "ɟ", "k", "ɡ", "q", "ɢ", "ʔ",
			"m", "ɱ", "n", "ɳ", "ɲ", "ŋ", "ɴ",
			"ʙ", "r", "ʀ", "ɾ", "ɽ",
			"ɸ", "β", "f", "v", "θ", "ð", "s", "z", "ʃ", "ʒ", "ʂ", "ʐ",
			"ç", "ʝ", "x", "ɣ", "χ", "ʁ", "ħ", "ʕ", "h", "ɦ",
			"ɬ", "ɮ", "ʋ", "ɹ", "ɻ", "j", "ɰ", "l", "ɭ", "ʎ", "ʟ",
			"ʘ", "ǀ", "ǃ", "ǂ", "ǁ",
			"ɓ", "ɗ", "ʄ", "ɠ", "ʛ",
			"ʍ", "w", "ɥ", "ʜ", "ʢ", "ʡ", "ɕ", "ʑ", "ɺ", "ɧ",
		},
	},
	{
		Name:  CategoryDiacritics,
		Title: "Diacritics",
		// Mostly combining marks; they attach to the preceding base
		// character when inserted into a document.
		Symbols: []string{
			"̥", "̬", "ʰ", "̹", "̜", "̟", "̠",
			"̈", "̽", "̩", "̯", "˞",
			"̤", "̰", "̼", "ʷ", "ʲ", "ˠ", "ˤ", "̴",
			"̝", "̞", "̘", "̙",
			"̪", "̺", "̻", "̃", "ⁿ", "ˡ", "̚",
		},
	},
	{
		Name:  CategorySuprasegmentals,
		Title: "Suprasegmentals",
		Symbols: []string{
			"ˈ", "ˌ", "ː", "ˑ", "̆",
			"|", "‖", ".", "‿",
			"˥", "˦", "˧", "˨", "˩",
			"ꜛ", "ꜜ", "↗", "↘",
		},
	},
}

// Categories returns the built-in categories in default order.
func Categories() []Category {
	return categories
}

// CategoryNames returns the category names in default order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// CategoryByName looks up a built-in category by its stable name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
