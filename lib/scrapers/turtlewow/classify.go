package turtlewow

import "strings"

// Classification is keyword driven. Each table is evaluated in order and
// the first rule whose keyword appears in the row text wins; once a field
// is set, later rows never override it.
type keywordRule struct {
	value    string
	keywords []string
}

var typeRules = []keywordRule{
	{value: "armor", keywords: []string{"armor"}},
	{value: "weapon", keywords: []string{"weapon"}},
}

// armorSubtypeRules only apply to rows that also carry the parent "armor"
// keyword.
var armorSubtypeRules = []keywordRule{
	{value: "plate", keywords: []string{"plate"}},
	{value: "mail", keywords: []string{"mail"}},
	{value: "leather", keywords: []string{"leather"}},
	{value: "cloth", keywords: []string{"cloth"}},
}

var slotRules = []keywordRule{
	{value: "head", keywords: []string{"head", "helmet", "hat", "crown"}},
	{value: "chest", keywords: []string{"chest", "robe", "tunic"}},
	{value: "feet", keywords: []string{"feet", "boots", "shoes"}},
	{value: "hands", keywords: []string{"hands", "gloves", "gauntlets"}},
	{value: "legs", keywords: []string{"legs", "pants", "leggings"}},
	{value: "shoulders", keywords: []string{"shoulders", "pauldrons"}},
	{value: "waist", keywords: []string{"waist", "belt"}},
	{value: "wrist", keywords: []string{"wrist", "bracer"}},
}

// "uncommon" must precede "common", matching is by substring.
var qualityRules = []keywordRule{
	{value: "poor", keywords: []string{"poor"}},
	{value: "uncommon", keywords: []string{"uncommon"}},
	{value: "common", keywords: []string{"common"}},
	{value: "rare", keywords: []string{"rare"}},
	{value: "epic", keywords: []string{"epic"}},
	{value: "legendary", keywords: []string{"legendary"}},
}

var professionRules = []keywordRule{
	{value: "blacksmithing", keywords: []string{"blacksmithing", "blacksmith"}},
	{value: "tailoring", keywords: []string{"tailoring", "tailor"}},
	{value: "leatherworking", keywords: []string{"leatherworking", "leatherwork"}},
	{value: "enchanting", keywords: []string{"enchanting"}},
	{value: "engineering", keywords: []string{"engineering", "engineer"}},
	{value: "alchemy", keywords: []string{"alchemy", "alchemist"}},
	{value: "cooking", keywords: []string{"cooking", "cook"}},
	{value: "first aid", keywords: []string{"first aid"}},
	{value: "mining", keywords: []string{"mining"}},
	{value: "herbalism", keywords: []string{"herbalism"}},
}

// matchKeyword returns the value of the first rule with a keyword
// contained in text. The text must already be lowercased.
func matchKeyword(rules []keywordRule, text string) (string, bool) {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.value, true
			}
		}
	}
	return "", false
}
