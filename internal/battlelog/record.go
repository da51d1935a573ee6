package battlelog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/entities"
)

// TitleList title-cases every label and joins them with sep, or returns
// "None" for an empty list
func TitleList(labels []string, sep string) string {
	if len(labels) == 0 {
		return "None"
	}
	caser := cases.Title(language.English)
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = caser.String(l)
	}
	return strings.Join(out, sep)
}

// FormatRecord renders the full encounter sheet
func FormatRecord(enc *entities.Encounter) string {
	var sb strings.Builder

	title := enc.Name
	if enc.Shiny {
		title += " ✨ (Shiny)"
	}
	fmt.Fprintf(&sb, "%s  [%s]\n", title, enc.ID)
	fmt.Fprintf(&sb, "Level %d | SR %g | XP %d | Proficiency %s\n",
		enc.Level, enc.SR, enc.XP, entities.FormatModifier(enc.ProficiencyBonus))
	fmt.Fprintf(&sb, "Gender: %s | Types: %s | Size: %s\n",
		enc.Gender, TitleList(enc.Types, "/"), cases.Title(language.English).String(enc.Size))
	fmt.Fprintf(&sb, "Nature: %s\n", enc.Nature)
	fmt.Fprintf(&sb, "AC %d | HP %d/%d | Speed: %s | Senses: %s\n",
		enc.AC, enc.CurrentHP, enc.MaxHP, orNone(enc.Speed), orNone(enc.Senses))
	sb.WriteString("\n")
	sb.WriteString(stats.FormatSheet(enc.AbilityScores))
	sb.WriteString("\n\n")

	saves := make([]string, len(enc.SavingThrows))
	for i, s := range enc.SavingThrows {
		saves[i] = strings.ToUpper(s)
	}
	fmt.Fprintf(&sb, "Skills: %s\n", TitleList(enc.Skills, ", "))
	fmt.Fprintf(&sb, "Saving Throws: %s\n", orNone(strings.Join(saves, ", ")))
	fmt.Fprintf(&sb, "Vulnerabilities: %s\n", TitleList(enc.Vulnerabilities, ", "))
	fmt.Fprintf(&sb, "Resistances: %s\n", TitleList(enc.Resistances, ", "))
	fmt.Fprintf(&sb, "Immunities: %s\n", TitleList(enc.Immunities, ", "))

	sb.WriteString("\nMoves:\n")
	for _, slot := range enc.Moves {
		if slot.MaxPP == 0 && slot.Key == "" {
			fmt.Fprintf(&sb, "  %s\n", slot.Name)
			continue
		}
		fmt.Fprintf(&sb, "  %s (PP %d/%d)\n", slot.Name, slot.PP, slot.MaxPP)
	}

	sb.WriteString("\n")
	sb.WriteString(FormatAbilities(enc))
	fmt.Fprintf(&sb, "\nHeld Item: %s", enc.HeldItem)
	if enc.ImageURL != "" {
		fmt.Fprintf(&sb, "\nImage: %s", enc.ImageURL)
	}

	return sb.String()
}

// FormatAbilities renders the chosen ability followed by every hidden one
func FormatAbilities(enc *entities.Encounter) string {
	var sb strings.Builder
	if enc.Ability == nil {
		sb.WriteString("Ability: None\n")
	} else {
		sb.WriteString(abilityLine("Ability", enc.Ability))
	}
	for _, hidden := range enc.HiddenAbilities {
		sb.WriteString(abilityLine("Hidden Ability", hidden))
	}
	return sb.String()
}

func abilityLine(label string, a *entities.AbilityInfo) string {
	if a.Description == "" {
		return fmt.Sprintf("%s: %s\n", label, a.Name)
	}
	return fmt.Sprintf("%s: %s - %s\n", label, a.Name, a.Description)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
