package usecase

import (
	"fmt"

	"voice-to-jira/pkg/dateparse"
)

// extractionInstructionTemplate is the strict system instruction for task
// extraction. Placeholders: today's ISO date, timezone name.
const extractionInstructionTemplate = `You are a task analyst. Break the text into separate actions and return strictly a JSON array of tasks.
Rules:
1) every distinct action is a separate task (split on connectors such as "и", "а также", "затем", "после этого", "and", "also", "then", "after that");
2) each task has the fields {summary, description, labels, due, comment, priority}; summary is at most 160 characters; labels is 3-6 keywords joined by commas; priority is one of Highest, High, Medium, Low, Lowest;
3) today's date is %s; timezone: %s;
4) convert relative expressions ("завтра", "послезавтра", "через N дней/недель", "в пятницу", "tomorrow", "in N days"...) into an absolute due in YYYY-MM-DD format;
5) if no explicit date is given, set a reasonable due (usually +3 days).
Return ONLY the JSON array, no explanations.`

// cleanInstruction is the system instruction for the transcript cleanup pass.
const cleanInstruction = `You are a text editor. Fix typos, letter case and punctuation in the user's text without changing its meaning. The text may mix Russian and English. Return only the corrected text.`

// buildExtractionInstruction embeds the resolver's reference date and
// timezone so the generator resolves relative phrases against the same
// "today" the deterministic resolver uses.
func buildExtractionInstruction(r *dateparse.Resolver) string {
	return fmt.Sprintf(extractionInstructionTemplate,
		r.Reference().Format(dateparse.ISODate),
		r.Location().String(),
	)
}
