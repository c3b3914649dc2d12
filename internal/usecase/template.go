package usecase

import (
	"context"
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// RenderTemplate substitutes {{variable}} placeholders. Unknown variables are
// left untouched so a typo stays visible in the preview.
func RenderTemplate(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		if value, ok := vars[key]; ok {
			return value
		}
		return match
	})
}

// SampleTemplateVars mirrors the lead fields available to the automation
// workflow when it fills the template for real.
func SampleTemplateVars() map[string]string {
	return map[string]string{
		"name":     "Jane Doe",
		"company":  "Acme Corp",
		"region":   "Europe",
		"industry": "SaaS",
	}
}

// TemplateTestUseCase sends a rendered copy of the user's email template to a
// single address over SMTP.
type TemplateTestUseCase struct {
	Settings SettingsResolver
	Mailer   TemplateMailer
}

func NewTemplateTestUseCase(settings SettingsResolver, mailer TemplateMailer) *TemplateTestUseCase {
	return &TemplateTestUseCase{Settings: settings, Mailer: mailer}
}

func (uc *TemplateTestUseCase) SendTest(ctx context.Context, userID, to string) error {
	if to == "" {
		return &ValidationError{Message: "recipient address is required"}
	}

	if !uc.Mailer.Configured() {
		return &ConfigurationError{Message: "SMTP not configured"}
	}

	settings, err := uc.Settings.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if settings.EmailTemplate == "" {
		return &ValidationError{Message: "Email template is empty"}
	}

	body := RenderTemplate(settings.EmailTemplate, SampleTemplateVars())

	if err := uc.Mailer.SendTemplateTest(to, "Template preview", body); err != nil {
		return &UpstreamError{Message: fmt.Sprintf("failed to send test email: %v", err)}
	}

	return nil
}
