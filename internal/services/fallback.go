package services

import "strings"

type keywordReply struct {
	keywords []string
	reply    string
}

// fallbackTable is checked in order; the first group with a matching keyword wins.
var fallbackTable = []keywordReply{
	{
		keywords: []string{"hello", "hi", "hey", "namaste"},
		reply:    "Hello! I'm Master Student, your AI study companion. How can I help you with your studies today? 📚✨",
	},
	{
		keywords: []string{"notes", "download", "study material", "find"},
		reply:    "I can help you find the perfect study notes! Use our search feature to find notes by subject, chapter, or topic. What subject are you looking for? 🔍📖",
	},
	{
		keywords: []string{"upload", "share", "earn", "money"},
		reply:    "Great! You can upload your notes to help other students and earn money. Click on 'Upload Notes' and follow the simple steps. What subject notes do you want to share? 💰📝",
	},
	{
		keywords: []string{"help", "how", "guide", "tutorial"},
		reply:    "I'm here to help! You can ask me about finding notes, uploading content, earning money, or any study-related questions. What would you like to know? 🤝💡",
	},
	{
		keywords: []string{"subject", "topics", "course", "syllabus"},
		reply:    "We have notes for Mathematics, Physics, Chemistry, Biology, Computer Science, English and more! Which subject interests you? I can guide you to the best resources. 📚🎯",
	},
	{
		keywords: []string{"exam", "test", "preparation", "study tips"},
		reply:    "Here are some study tips: 1) Create a study schedule 2) Take regular breaks 3) Practice with past papers 4) Use our quality notes 5) Join study groups. Need specific exam help? 📝⏰",
	},
}

const defaultFallbackReply = "I'm here to help with your studies! Ask me about finding notes, uploading content, earning money, or any academic questions you have. Let's make learning easier together! 🎓✨"

// Fallback maps a message to a canned reply. It never fails.
func Fallback(message string) string {
	lower := strings.ToLower(message)
	for _, group := range fallbackTable {
		if containsAny(lower, group.keywords) {
			return group.reply
		}
	}
	return defaultFallbackReply
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
