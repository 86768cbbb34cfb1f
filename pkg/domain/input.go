package domain

import "fmt"

// InputMode controls how the pointer behaves inside a scope.
type InputMode int

const (
	InputVisible        InputMode = iota // Pointer shown, free to leave the scope
	InputHidden                          // Pointer hidden, free to leave the scope
	InputCaptured                        // Pointer hidden and locked to the scope
	InputConfined                        // Pointer shown but cannot leave the scope
	InputConfinedHidden                  // Pointer hidden and cannot leave the scope
)

var inputModeNames = map[InputMode]string{
	InputVisible:        "visible",
	InputHidden:         "hidden",
	InputCaptured:       "captured",
	InputConfined:       "confined",
	InputConfinedHidden: "confined_hidden",
}

func (m InputMode) String() string {
	if name, ok := inputModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("InputMode(%d)", int(m))
}

// ParseInputMode converts a textual mode (as written in config or commands).
func ParseInputMode(s string) (InputMode, error) {
	for mode, name := range inputModeNames {
		if name == s {
			return mode, nil
		}
	}
	return InputVisible, fmt.Errorf("unknown input mode: %q", s)
}

// InputEvent is the raw input event that triggered an interaction.
// The coordinator never inspects it; it is carried through untouched.
type InputEvent struct {
	Kind    string  `json:"kind"`
	Button  int     `json:"button,omitempty"`
	Pressed bool    `json:"pressed,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
}
