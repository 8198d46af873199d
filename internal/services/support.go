package services

import (
	"fmt"
	"strings"
)

var supportPhrases = []string{
	"uploaded notes but no coins",
	"not receiving coins",
	"notes not approved",
	"coins not credited",
	"uploaded but no money",
	"notes uploaded no payment",
	"where are my coins",
	"not getting paid",
	"support",
	"help with payment",
	"issue with coins",
}

// IsSupportIssue reports whether the message is a payout or approval complaint.
func IsSupportIssue(message string) bool {
	return containsAny(strings.ToLower(message), supportPhrases)
}

func supportReply(name string) string {
	return fmt.Sprintf(`Hi %s! I understand your concern about your coins. Here's how earning works on Master Student:

1. Upload: every set of notes you upload first goes into our review queue.
2. Approval: our teachers check each upload for quality and originality. This usually takes 24-48 hours, and notes that are still pending approval don't earn coins yet.
3. Earn: once your notes are approved, 20 coins are credited to your account, and you earn 50%% of the price every time another student downloads them.

If your notes are still under review, please wait for the approval process to finish. If they were approved and your coins are still missing, our support team will look into it for you.`, name)
}

func supportConfirmation(supportEmail string) string {
	return fmt.Sprintf("📧 I've shared your issue with our support team at %s. They will get back to you on your registered email soon.", supportEmail)
}
