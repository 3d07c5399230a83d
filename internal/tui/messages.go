package tui

type entriesLoadedMsg struct {
	ids []string
	err error
}

type entryDecryptedMsg struct {
	id   string
	text string
	err  error
}

type entrySavedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}
