package domain

// Rating represents the user's self-assessed recall quality for one word.
type Rating string

const (
	RatingAgain   Rating = "AGAIN"
	RatingHard    Rating = "HARD"
	RatingGood    Rating = "GOOD"
	RatingEasy    Rating = "EASY"
	RatingUnknown Rating = "UNKNOWN"
)

func (r Rating) String() string { return string(r) }

func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy, RatingUnknown:
		return true
	}
	return false
}

// CEFRLevel is a difficulty band on the Common European Framework scale.
type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
	CEFRC2 CEFRLevel = "C2"
)

// cefrOrder lists CEFR bands from easiest to hardest.
var cefrOrder = []CEFRLevel{CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1, CEFRC2}

func (l CEFRLevel) String() string { return string(l) }

func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1, CEFRC2:
		return true
	}
	return false
}

// StepUp returns the next harder band, staying at C2 at the ceiling.
func (l CEFRLevel) StepUp() CEFRLevel {
	for i, v := range cefrOrder {
		if v == l && i < len(cefrOrder)-1 {
			return cefrOrder[i+1]
		}
	}
	if !l.IsValid() {
		return l
	}
	return CEFRC2
}

// StepDown returns the next easier band, staying at A1 at the floor.
func (l CEFRLevel) StepDown() CEFRLevel {
	for i, v := range cefrOrder {
		if v == l && i > 0 {
			return cefrOrder[i-1]
		}
	}
	if !l.IsValid() {
		return l
	}
	return CEFRA1
}

// Style selects the register of generated sentences.
type Style string

const (
	StyleNeutral  Style = "NEUTRAL"
	StyleNews     Style = "NEWS"
	StyleDialog   Style = "DIALOG"
	StyleAcademic Style = "ACADEMIC"
)

func (s Style) String() string { return string(s) }

func (s Style) IsValid() bool {
	switch s {
	case StyleNeutral, StyleNews, StyleDialog, StyleAcademic:
		return true
	}
	return false
}

// Feedback is the user's coarse reaction to a generated batch.
type Feedback string

const (
	FeedbackTooEasy Feedback = "TOO_EASY"
	FeedbackOK      Feedback = "OK"
	FeedbackTooHard Feedback = "TOO_HARD"
)

func (f Feedback) String() string { return string(f) }

func (f Feedback) IsValid() bool {
	switch f {
	case FeedbackTooEasy, FeedbackOK, FeedbackTooHard:
		return true
	}
	return false
}
