package scholarly

import (
	"context"
	"strings"
)

// EmailRequest is the input of an email customisation.
type EmailRequest struct {
	// Template is the user's email draft.
	Template string

	// Context is the profile summary the email should be personalised with.
	Context string

	// Comments are optional free-form instructions.
	Comments string
}

// Validate returns an error if the request contains invalid fields.
func (r *EmailRequest) Validate() error {
	if strings.TrimSpace(r.Template) == "" {
		return Errorf(EINVALID, "email template required")
	}
	if strings.TrimSpace(r.Context) == "" {
		return Errorf(EINVALID, "profile context required")
	}
	return nil
}

// EmailComposer turns a template and a profile summary into a personalised email.
type EmailComposer interface {
	Compose(ctx context.Context, req EmailRequest) (string, error)
}

// EmailSystemPrompt instructs a text-generation model how to treat an EmailRequest.
const EmailSystemPrompt = "You are an assistant that personalises outreach emails to academic researchers. " +
	"Rewrite the email template using facts from the researcher profile. " +
	"Keep the template's intent, tone and structure. Do not invent facts that are not in the profile. " +
	"Return only the email text."

// BuildEmailPrompt builds the user prompt for an email customisation.
func BuildEmailPrompt(req EmailRequest) string {
	var sb strings.Builder
	sb.WriteString("<template>\n")
	sb.WriteString(strings.TrimSpace(req.Template))
	sb.WriteString("\n</template>\n\n")
	sb.WriteString("<profile>\n")
	sb.WriteString(strings.TrimSpace(req.Context))
	sb.WriteString("\n</profile>\n")
	if c := strings.TrimSpace(req.Comments); c != "" {
		sb.WriteString("\n<comments>\n")
		sb.WriteString(c)
		sb.WriteString("\n</comments>\n")
	}
	return sb.String()
}
