package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/OnslaughtSnail/vitae/kernel/export"
	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/validate"
)

// texts are the static per-language phrases of the template renderer.
type texts struct {
	askField      string // fmt: field label
	askSkill      string
	askAnother    map[state.Step]string
	reviewHeader  string
	reviewFooter  string
	finalized     string
	reasons       map[validate.Reason]string
	reasonDefault string
}

var langTexts = map[string]texts{
	"en": {
		askField: "Please provide %s.",
		askSkill: "List a skill (or several, comma-separated). Type 'done' when finished.",
		askAnother: map[state.Step]string{
			state.StepEducation:  "Education entry saved. Add another? (yes/no)",
			state.StepExperience: "Work experience entry saved. Add another? (yes/no)",
		},
		reviewHeader: "Here is your resume so far:",
		reviewFooter: "Type 'confirm' to generate it, or 'edit <section>' to change a section.",
		finalized:    "Your resume has been generated. You can download it now.",
		reasons: map[validate.Reason]string{
			validate.ReasonEmpty:         "I need a non-empty value.",
			validate.ReasonBadEmail:      "That doesn't look like a valid email address.",
			validate.ReasonBadPhone:      "That doesn't look like a valid phone number.",
			validate.ReasonBadDate:       "Please use YYYY-MM or YYYY for dates.",
			validate.ReasonRangeInverted: "The end date is before the start date.",
			validate.ReasonOutOfRange:    "That value is out of range.",
			validate.ReasonTooLong:       "That value is too long.",
			validate.ReasonUnrecognized:  "I didn't understand that.",
			validate.ReasonLimitReached:  "No further corrections are allowed.",
		},
		reasonDefault: "That input was not accepted.",
	},
	"ar": {
		askField: "الرجاء تقديم %s.",
		askSkill: "اذكر مهارة (أو عدة مهارات مفصولة بفواصل). اكتب 'تم' عند الانتهاء.",
		askAnother: map[state.Step]string{
			state.StepEducation:  "تم حفظ بيانات التعليم. هل تريد إضافة المزيد؟ (نعم/لا)",
			state.StepExperience: "تم حفظ بيانات الخبرة. هل تريد إضافة المزيد؟ (نعم/لا)",
		},
		reviewHeader: "هذه سيرتك الذاتية حتى الآن:",
		reviewFooter: "اكتب 'تأكيد' لإنشائها، أو 'تعديل <القسم>' لتغيير قسم.",
		finalized:    "تم إنشاء سيرتك الذاتية بنجاح! يمكنك تحميلها الآن.",
		reasons: map[validate.Reason]string{
			validate.ReasonEmpty:         "أحتاج إلى قيمة غير فارغة.",
			validate.ReasonBadEmail:      "هذا لا يبدو عنوان بريد إلكتروني صالحًا.",
			validate.ReasonBadPhone:      "هذا لا يبدو رقم هاتف صالحًا.",
			validate.ReasonBadDate:       "الرجاء استخدام الصيغة YYYY-MM أو YYYY للتواريخ.",
			validate.ReasonRangeInverted: "تاريخ الانتهاء قبل تاريخ البدء.",
			validate.ReasonOutOfRange:    "القيمة خارج النطاق المسموح.",
			validate.ReasonTooLong:       "القيمة طويلة جدًا.",
			validate.ReasonUnrecognized:  "لم أفهم ذلك.",
			validate.ReasonLimitReached:  "لا يُسمح بمزيد من التعديلات.",
		},
		reasonDefault: "لم يتم قبول هذا الإدخال.",
	},
}

// Template is the static renderer and the fallback for LLM renderers.
type Template struct {
	schema *form.Schema
}

func NewTemplate(schema *form.Schema) *Template {
	return &Template{schema: schema}
}

func (t *Template) Render(ctx context.Context, d Directive, data state.ResumeData, lang string) (string, error) {
	_ = ctx
	tx, ok := langTexts[lang]
	if !ok {
		tx = langTexts["en"]
	}

	var parts []string
	if d.Reason != "" {
		msg, ok := tx.reasons[d.Reason]
		if !ok {
			msg = tx.reasonDefault
		}
		parts = append(parts, msg)
	}

	switch {
	case d.Finalized:
		parts = append(parts, tx.finalized)
	case d.Review:
		parts = append(parts, tx.reviewHeader, "", export.Markdown(data, lang), tx.reviewFooter)
	case d.AskAnother:
		ask, ok := tx.askAnother[d.Step]
		if !ok {
			ask = tx.askAnother[state.StepEducation]
		}
		parts = append(parts, ask)
	case d.Step == state.StepSkills:
		parts = append(parts, tx.askSkill)
	case d.Field != "":
		parts = append(parts, fmt.Sprintf(tx.askField, t.fieldLabel(d, lang)))
	}

	return strings.Join(parts, "\n"), nil
}

func (t *Template) fieldLabel(d Directive, lang string) string {
	var fields []form.Field
	switch d.Step {
	case state.StepPersonalInfo:
		fields = t.schema.Personal
	case state.StepEducation:
		fields = t.schema.Education
	case state.StepExperience:
		fields = t.schema.Experience
	}
	if f, ok := form.FieldByID(fields, d.Field); ok {
		if label, ok := f.Label[lang]; ok && label != "" {
			return label
		}
		if label, ok := f.Label["en"]; ok && label != "" {
			return label
		}
	}
	return d.Field
}
