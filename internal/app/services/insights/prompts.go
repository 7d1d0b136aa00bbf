package insights

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/utils"
)

const (
	scheduleSystemInstruction = "You are a pediatric health expert. Always use the latest official IDAI 2024/2025 data."
	analyzeSystemInstruction  = "You are a senior medical consultant. Structure your response into clear, distinct sections for easy reading."
)

func targetLanguage(language string) string {
	if language == constvars.LanguageEN {
		return "English"
	}
	return "Indonesian"
}

func healthInsightsPrompt(member models.FamilyMember, language string, growthLogs []models.GrowthLog, now time.Time) string {
	age := "unknown"
	if years, ok := utils.AgeInYears(member.BirthDate, now); ok {
		age = strconv.Itoa(years) + " years old"
	}

	allergies := make([]string, 0, len(member.Allergies))
	for _, allergy := range member.Allergies {
		allergies = append(allergies, fmt.Sprintf("%s (%s)", allergy.Name, allergy.Reaction))
	}
	allergyLine := strings.Join(allergies, ", ")
	if allergyLine == "" {
		allergyLine = "None"
	}

	var b strings.Builder
	b.WriteString("You are a specialized medical AI assistant.\n")
	b.WriteString("Based on the following profile, provide actionable health insights.\n\n")
	fmt.Fprintf(&b, "CRITICAL: You MUST return all content in %s.\n\n", targetLanguage(language))
	b.WriteString("Profile:\n")
	fmt.Fprintf(&b, "Name: %s\n", member.Name)
	fmt.Fprintf(&b, "Age: %s\n", age)
	fmt.Fprintf(&b, "Role: %s\n", member.Relation)
	fmt.Fprintf(&b, "Allergies: %s\n", allergyLine)
	if len(growthLogs) > 0 {
		b.WriteString("Growth history:\n")
		for _, log := range growthLogs {
			fmt.Fprintf(&b, "- %s: weight %s kg, height %s cm\n", log.DateTime, formatMeasure(log.Weight), formatMeasure(log.Height))
		}
	}
	b.WriteString("\nReturn JSON:\n")
	b.WriteString(`{"insights":[{"title":"string","content":"string","source":"AI" | "WHO" | "IDAI","type":"info" | "warning" | "success"}]}`)
	return b.String()
}

func formatMeasure(value *float64) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func analyzeRecordPrompt(content, language string) string {
	return fmt.Sprintf(`Analyze this medical record: %q.
Provide a highly structured analysis with 3 distinct cards:
1. Temuan Utama (Key Findings)
2. Ringkasan Diagnosis (Diagnostic Summary)
3. Tindakan Selanjutnya (Action Items)

Keep it professional, tidy, and clean.
Output language: %s.`, content, targetLanguage(language))
}

func vaccinationSchedulePrompt(ageInMonths int, language string) string {
	return fmt.Sprintf(`Provide the OFFICIAL IDAI (Ikatan Dokter Anak Indonesia) LATEST 2024/2025 immunization schedule for a child aged %d months.
Focus on the most recent 2024 updates.
Format the output in clean Markdown with clear sections.
Use bold headers for: 'JADWAL WAJIB SAAT INI', 'JADWAL MENDATANG', and 'TIP KESEHATAN'.
Output language: %s.`, ageInMonths, targetLanguage(language))
}

// insightsSchema is the structured output shape requested for insight cards.
var insightsSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"insights": map[string]interface{}{
			"type": "ARRAY",
			"items": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"title":   map[string]string{"type": "STRING"},
					"content": map[string]string{"type": "STRING"},
					"source":  map[string]string{"type": "STRING"},
					"type":    map[string]string{"type": "STRING"},
				},
				"required": []string{"title", "content", "source", "type"},
			},
		},
	},
}
