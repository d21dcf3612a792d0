package lessonrun

// feedbackDoneMsg is sent when the feedback display period ends. Generation
// ties the timer to the run state it was scheduled for; a stale generation
// means the learner advanced (or quit) first and the message is dropped.
type feedbackDoneMsg struct {
	generation int
}
