package handler

import (
	"strings"

	"github.com/OnslaughtSnail/vitae/kernel/state"
)

// signal is a recognized control keyword extracted from user input.
type signal int

const (
	signalNone signal = iota
	signalDone
	signalSkip
	signalYes
	signalNo
	signalConfirm
	signalEdit
)

// keywords per language. The Arabic set mirrors the English one so either
// language works regardless of the session language.
var keywordTable = map[string]signal{
	"done":   signalDone,
	"تم":     signalDone,
	"skip":   signalSkip,
	"تخطي":   signalSkip,
	"yes":    signalYes,
	"y":      signalYes,
	"نعم":    signalYes,
	"no":     signalNo,
	"n":      signalNo,
	"لا":     signalNo,
	"confirm": signalConfirm,
	"generate": signalConfirm,
	"إنشاء":  signalConfirm,
	"تأكيد":  signalConfirm,
	"edit":   signalEdit,
	"تعديل":  signalEdit,
}

// sectionNames maps a user-typed section name to its step for review
// corrections.
var sectionNames = map[string]state.Step{
	"personal":      state.StepPersonalInfo,
	"personal info": state.StepPersonalInfo,
	"personal_info": state.StepPersonalInfo,
	"البيانات الشخصية": state.StepPersonalInfo,
	"education":     state.StepEducation,
	"التعليم":       state.StepEducation,
	"experience":    state.StepExperience,
	"work experience": state.StepExperience,
	"الخبرة":        state.StepExperience,
	"skills":        state.StepSkills,
	"المهارات":      state.StepSkills,
}

// signalOf classifies a whole input as a control keyword.
func signalOf(text string) signal {
	return keywordTable[strings.ToLower(strings.TrimSpace(text))]
}

// editTarget parses "edit <section>" style input. ok is false when the
// input is not an edit request; target defaults to PersonalInfo when the
// section is omitted, matching the original intake behavior.
func editTarget(text string) (state.Step, bool) {
	trimmed := strings.TrimSpace(text)
	fields := strings.Fields(strings.ToLower(trimmed))
	if len(fields) == 0 {
		return "", false
	}
	if keywordTable[fields[0]] != signalEdit {
		return "", false
	}
	rest := strings.TrimSpace(strings.Join(fields[1:], " "))
	if rest == "" {
		return state.StepPersonalInfo, true
	}
	if step, ok := sectionNames[rest]; ok {
		return step, true
	}
	return "", false
}
