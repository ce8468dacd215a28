package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// formWords are the brand/locale tokens a form number starts with.
var formWords = []string{"CJK", "KAUL", "MKE", "CASH", "SALV", "JUNK"}

// GenerateFormNumber returns a human-readable reference code for a
// new lead: a random word followed by the 12-hour clock hour, the
// zero-padded day and month, and the four-digit year. The code is a
// mnemonic for customers and receipts, not a unique key; the lead's
// row id remains the true identity.
func GenerateFormNumber() string {
	word := formWords[rand.Intn(len(formWords))]
	return FormNumberAt(word, time.Now())
}

// FormNumberAt builds the form number for a given word and instant.
func FormNumberAt(word string, t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s%d%02d%02d%d", word, hour, t.Day(), int(t.Month()), t.Year())
}
