package call

import "github.com/dinakars/hebrew-call-center/internal/ai"

// fallbackScript is the canned cancellation call used for any step where
// dialogue generation is unavailable. Speakers alternate customer/support,
// same as the live loop, so a partially generated call stays coherent.
var fallbackScript = []ai.Line{
	{Speaker: ai.SpeakerCustomer, Text: "שלום, אני רוצה לבטל את המנוי לטלוויזיה שלי"},
	{Speaker: ai.SpeakerSupport, Text: "שלום, אני מבין שאתה רוצה לבטל את המנוי. האם אתה יכול להסביר לי מה הבעיה?"},
	{Speaker: ai.SpeakerCustomer, Text: "החשבונות יקרים מדי והשירות לא טוב"},
	{Speaker: ai.SpeakerSupport, Text: "אני מבין את הבעיה. בואו נראה איך אפשר לעזור לך. יש לנו הצעות מיוחדות"},
	{Speaker: ai.SpeakerCustomer, Text: "לא מעוניין, אני רוצה לבטל עכשיו"},
	{Speaker: ai.SpeakerSupport, Text: "בסדר, אני אעבד את הביטול. תקבל אישור במייל תוך 24 שעות"},
}

// fallbackLine returns the scripted text for a 1-based step.
func fallbackLine(step int) string {
	if step < 1 || step > len(fallbackScript) {
		return ""
	}
	return fallbackScript[step-1].Text
}
