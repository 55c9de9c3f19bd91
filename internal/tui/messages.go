package tui

type authDoneMsg struct {
	username string
	key      []byte
	err      error
}

type registerDoneMsg struct {
	username string
	err      error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
