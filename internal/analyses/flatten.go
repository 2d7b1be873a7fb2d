package analyses

import "strings"

// Skill lists flatten on ", "; the narrative lists flatten on newlines.
// splitComma and splitLines invert the joins for reads, dropping empty
// elements so a stored empty string reads back as an empty list.

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}

func joinLines(items []string) string {
	return strings.Join(items, "\n")
}

func splitComma(value string) []string {
	return splitAndClean(value, ",")
}

func splitLines(value string) []string {
	return splitAndClean(value, "\n")
}

func splitAndClean(value, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(value, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func flattenResult(result Result) Analysis {
	return Analysis{
		OverallScore:           result.OverallScore,
		ExperienceSummary:      result.ExperienceSummary,
		SkillsTechnical:        joinComma(result.Skills.Technical),
		SkillsSoft:             joinComma(result.Skills.Soft),
		Strengths:              joinLines(result.Strengths),
		Gaps:                   joinLines(result.Gaps),
		ImprovementSuggestions: joinLines(result.ImprovementSuggestions),
	}
}

func reconstructResult(analysis Analysis) Result {
	return Result{
		OverallScore:      analysis.OverallScore,
		ExperienceSummary: analysis.ExperienceSummary,
		Skills: Skills{
			Technical: splitComma(analysis.SkillsTechnical),
			Soft:      splitComma(analysis.SkillsSoft),
		},
		Strengths:              splitLines(analysis.Strengths),
		Gaps:                   splitLines(analysis.Gaps),
		ImprovementSuggestions: splitLines(analysis.ImprovementSuggestions),
	}
}
