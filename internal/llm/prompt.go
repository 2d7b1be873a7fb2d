package llm

import "strings"

const analysisSystemPrompt = "You are an expert resume reviewer and career coach. " +
	"Evaluate resumes rigorously and respond with valid JSON only."

const analysisSchema = `{
  "overall_score": <integer 0-100>,
  "experience_summary": "<2-3 sentence summary of the candidate's experience>",
  "skills": {
    "technical": ["<technical skill>", ...],
    "soft": ["<soft skill>", ...]
  },
  "strengths": ["<strength>", ...],
  "gaps": ["<gap or weakness>", ...],
  "improvement_suggestions": ["<concrete suggestion>", ...]
}`

// BuildAnalysisPrompt assembles the chat messages for a resume evaluation.
// The job description section is included only when one is provided.
func BuildAnalysisPrompt(resumeText, jobDescription string) []Message {
	var b strings.Builder
	b.WriteString("Analyze the following resume and return your evaluation as JSON inside a fenced code block.\n\n")
	b.WriteString("Resume:\n")
	b.WriteString(resumeText)
	b.WriteString("\n")
	if strings.TrimSpace(jobDescription) != "" {
		b.WriteString("\nTarget job description:\n")
		b.WriteString(jobDescription)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond with a single fenced ```json block containing exactly this structure:\n")
	b.WriteString(analysisSchema)
	b.WriteString("\n")

	return []Message{
		{Role: RoleSystem, Content: analysisSystemPrompt},
		{Role: RoleUser, Content: b.String()},
	}
}
