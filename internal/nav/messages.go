package nav

// SelectSubjectMsg asks the app to open a subject's detail screen.
type SelectSubjectMsg struct {
	ID string
}

// BackMsg asks the app to leave detail mode via the explicit back action.
type BackMsg struct{}

// SwitchTabMsg asks the app to change the active bottom-bar tab.
type SwitchTabMsg struct {
	Tab Tab
}

// ToastMsg asks the app to show a transient status line.
type ToastMsg struct {
	Text  string
	IsErr bool
}
