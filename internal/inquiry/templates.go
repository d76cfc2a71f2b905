package inquiry

import (
	"fmt"
	"html/template"
	"strings"
)

type partnershipView struct {
	Data      *Partnership
	Selected  []string
	Timestamp string
	Reference string
}

type counselingView struct {
	Data         *Counseling
	AttachmentKB string
	Timestamp    string
	Reference    string
}

type researchView struct {
	Data      *Research
	Phone     string
	Timestamp string
	Reference string
}

type facultyView struct {
	Data      *GlobalFaculty
	Selected  []string
	Timestamp string
	Reference string
}

func render(t *template.Template, v any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, v); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return b.String(), nil
}

var partnershipStaffTmpl = template.Must(template.New("partnership_staff").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; }
    .container { max-width: 700px; margin: 0 auto; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, #1565d8 0%, #228be6 100%); color: white; padding: 30px; text-align: center; }
    .content { background: white; padding: 30px; }
    .section { margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: #1565d8; }
    .interests { background: #f0f7ff; padding: 15px; border-left: 3px solid #1565d8; margin: 10px 0; }
    .notes { background: #f9f9f9; padding: 15px; border-left: 4px solid #228be6; margin: 10px 0; white-space: pre-wrap; }
    .ref { color: #999; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🌍 New Partnership Inquiry</h1>
      <p>Kumaraguru Global Engagement Office</p>
    </div>
    <div class="content">
      <div class="section">
        <h3>📋 Institution Details</h3>
        <p><span class="label">Institution:</span> <strong>{{.Data.Institution}}</strong></p>
        <p><span class="label">Country:</span> {{.Data.Country}}</p>
      </div>
      <div class="section">
        <h3>👤 Contact Information</h3>
        <p><span class="label">Name:</span> <strong>{{.Data.ContactPerson}}</strong></p>
        <p><span class="label">Designation:</span> {{.Data.Designation}}</p>
        <p><span class="label">Email:</span> <a href="mailto:{{.Data.Email}}">{{.Data.Email}}</a></p>
        <p><span class="label">Phone:</span> {{.Data.Phone}}</p>
      </div>
      <div class="section">
        <h3>🎯 Areas of Interest</h3>
        <div class="interests">
          {{range .Selected}}<div>• {{.}}</div>
          {{else}}<p>No areas selected</p>{{end}}
        </div>
      </div>
      {{if .Data.Notes}}
      <div class="section">
        <h3>💬 Additional Notes</h3>
        <div class="notes">{{.Data.Notes}}</div>
      </div>
      {{end}}
      <div class="section">
        <p><strong>⏰ Received:</strong> {{.Timestamp}}</p>
        <p class="ref">Reference: {{.Reference}}</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

var partnershipConfirmTmpl = template.Must(template.New("partnership_confirm").Parse(`<div style="font-family: Arial; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #1565d8 0%, #228be6 100%); color: white; padding: 30px; text-align: center;">
    <h1>Thank You!</h1>
  </div>
  <div style="padding: 30px;">
    <p>Dear {{.Data.ContactPerson}},</p>
    <p>Thank you for your interest in partnering with <strong>Kumaraguru Institutions</strong>.</p>
    <p>We received your inquiry from <strong>{{.Data.Institution}}</strong>.</p>
    <p><strong>Next Steps:</strong></p>
    <ul>
      <li>Review within 24-48 hours</li>
      <li>We'll contact you to discuss opportunities</li>
    </ul>
    <p>Contact: <a href="mailto:geo@kumaraguru.edu.in">geo@kumaraguru.edu.in</a></p>
    <p>Best regards,<br><strong>Global Engagement Office</strong></p>
    <p style="color: #999; font-size: 12px;">Reference: {{.Reference}}</p>
  </div>
</div>
`))

var counselingStaffTmpl = template.Must(template.New("counseling_staff").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; background: #f5f5f5; }
    .container { max-width: 700px; margin: 20px auto; background: white; border-radius: 12px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #1565d8 0%, #228be6 100%); color: white; padding: 40px 30px; text-align: center; }
    .content { padding: 40px 30px; }
    .section { margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #f0f7ff; }
    .section h3 { color: #1565d8; font-size: 18px; margin: 0 0 15px; }
    .info-row { margin: 12px 0; }
    .label { font-weight: 600; color: #1565d8; min-width: 140px; display: inline-block; }
    .highlight { background: #f0f7ff; padding: 15px; border-radius: 8px; border-left: 4px solid #1565d8; margin: 15px 0; }
    .badge { display: inline-block; background: linear-gradient(135deg, #1565d8, #228be6); color: white; padding: 6px 16px; border-radius: 20px; font-size: 13px; font-weight: 600; }
    .notes { background: #f9fbff; padding: 15px; border-radius: 10px; border-left: 4px solid #228be6; white-space: pre-wrap; }
    .footer { background: #f8f9fa; padding: 25px 30px; text-align: center; border-top: 2px solid #e9ecef; }
    .footer p { margin: 5px 0; color: #666; font-size: 13px; }
    .timestamp { background: #fff3cd; color: #856404; padding: 12px; border-radius: 8px; border-left: 4px solid #ffc107; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎓 New Counseling Request</h1>
      <p>KI Outbound Programs - Global Future Centre</p>
    </div>
    <div class="content">
      <div class="section">
        <h3>👤 Student Information</h3>
        <div class="info-row"><span class="label">Full Name:</span> <strong>{{.Data.Name}}</strong></div>
        <div class="info-row"><span class="label">Email:</span> <a href="mailto:{{.Data.Email}}">{{.Data.Email}}</a></div>
        <div class="info-row"><span class="label">Year:</span> {{.Data.Year}}</div>
        <div class="info-row"><span class="label">Program:</span> {{.Data.Program}}</div>
      </div>
      <div class="section">
        <h3>🎯 Area of Interest</h3>
        <div class="highlight"><span class="badge">{{.Data.AreaOfInterest}}</span></div>
      </div>
      {{if .Data.AdditionalNotes}}
      <div class="section">
        <h3>📝 Additional Notes</h3>
        <div class="notes">{{.Data.AdditionalNotes}}</div>
      </div>
      {{end}}
      {{if .Data.Attachment}}
      <div class="section">
        <h3>📎 Attachment</h3>
        <div class="info-row"><span class="label">File Name:</span> {{.Data.Attachment.Name}}</div>
        <div class="info-row"><span class="label">File Size:</span> {{.AttachmentKB}}</div>
      </div>
      {{end}}
      <div class="timestamp">
        <strong>📅 Received:</strong> {{.Timestamp}}
      </div>
    </div>
    <div class="footer">
      <p><strong>K-GEO Office | Kumaraguru Institutions</strong></p>
      <p>This request was submitted through the KI Outbound Programs Counseling Portal</p>
      <p>Reference: {{.Reference}}</p>
      <p style="color: #dc3545; font-weight: 600; margin-top: 10px;">⚡ Action Required: Please respond within 24 hours</p>
    </div>
  </div>
</body>
</html>
`))

var counselingConfirmTmpl = template.Must(template.New("counseling_confirm").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background: #f5f5f5;">
  <div style="background: linear-gradient(135deg, #1565d8 0%, #228be6 100%); color: white; padding: 35px 30px; text-align: center; border-radius: 12px 12px 0 0;">
    <h1 style="margin: 0; font-size: 26px;">🎉 Request Received!</h1>
    <p style="margin: 10px 0 0; font-size: 16px;">Thank you for reaching out to K-GEO</p>
  </div>
  <div style="background: white; padding: 35px 30px; border-radius: 0 0 12px 12px;">
    <p style="font-size: 16px; margin: 0 0 20px;">Dear <strong>{{.Data.Name}}</strong>,</p>
    <p style="font-size: 15px; margin: 0 0 15px;">Thank you for your interest in our <strong>{{.Data.AreaOfInterest}}</strong> program!</p>
    <div style="background: #f0f7ff; padding: 20px; border-radius: 8px; border-left: 4px solid #1565d8; margin: 25px 0;">
      <p style="margin: 0 0 10px; font-size: 15px;"><strong>📋 Your Request Summary:</strong></p>
      <p style="margin: 5px 0; color: #555;"><strong>Name:</strong> {{.Data.Name}}</p>
      <p style="margin: 5px 0; color: #555;"><strong>Program:</strong> {{.Data.Program}}</p>
      <p style="margin: 5px 0; color: #555;"><strong>Year:</strong> {{.Data.Year}}</p>
      <p style="margin: 5px 0; color: #555;"><strong>Interest:</strong> {{.Data.AreaOfInterest}}</p>
      {{if .Data.AdditionalNotes}}<p style="margin: 5px 0; color: #555;"><strong>Notes:</strong> {{.Data.AdditionalNotes}}</p>{{end}}
    </div>
    <div style="background: #fff3cd; padding: 18px; border-radius: 8px; border-left: 4px solid #ffc107; margin: 25px 0;">
      <p style="margin: 0; color: #856404; font-weight: 600;">⏱️ What Happens Next?</p>
      <ul style="margin: 10px 0 0; padding-left: 20px; color: #856404;">
        <li>Our counseling team will review your request within <strong>24 hours</strong></li>
        <li>You'll receive an email with available counseling slots</li>
        <li>We'll schedule a personalized session to discuss your global opportunities</li>
      </ul>
    </div>
    <p style="font-size: 15px; margin: 25px 0 15px;">If you have urgent questions, feel free to reach out:</p>
    <div style="background: #f8f9fa; padding: 18px; border-radius: 8px; text-align: center; margin: 20px 0;">
      <p style="margin: 5px 0; color: #555;">📧 <a href="mailto:global@kumaraguru.in" style="color: #1565d8; text-decoration: none; font-weight: 600;">global@kumaraguru.in</a></p>
      <p style="margin: 5px 0; color: #555;">📍 K-GEO Office, Kumaraguru Campus</p>
    </div>
    <p style="font-size: 15px; margin: 30px 0 0;">Best regards,</p>
    <p style="font-size: 15px; margin: 5px 0; font-weight: 600; color: #1565d8;">Global Future Centre Team</p>
    <p style="font-size: 14px; margin: 5px 0; color: #666;">Kumaraguru Institutions</p>
  </div>
  <div style="text-align: center; padding: 20px; color: #999; font-size: 12px;">
    <p style="margin: 0;">This is an automated confirmation. Please do not reply to this email.</p>
    <p style="margin: 0;">Reference: {{.Reference}}</p>
  </div>
</body>
</html>
`))

var researchStaffTmpl = template.Must(template.New("research_staff").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; }
    .container { max-width: 700px; margin: 0 auto; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, rgb(33, 47, 70) 0%, #228be6 100%); color: white; padding: 30px; text-align: center; }
    .content { background: white; padding: 30px; }
    .section { margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: rgb(33, 47, 70); }
    .ref { color: #999; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🔬 New Research Collaboration Inquiry</h1>
      <p>Kumaraguru Research Office</p>
    </div>
    <div class="content">
      <div class="section">
        <h3>📋 Researcher Details</h3>
        <p><span class="label">Name:</span> <strong>{{.Data.Name}}</strong></p>
        <p><span class="label">Institution:</span> {{.Data.Institution}}</p>
        <p><span class="label">Country:</span> {{.Data.Country}}</p>
      </div>
      <div class="section">
        <h3>🔍 Research Information</h3>
        <p><span class="label">Research Domain:</span> {{.Data.ResearchDomain}}</p>
        <p><span class="label">Preferred Mode:</span> {{.Data.PreferredMode}}</p>
      </div>
      <div class="section">
        <h3>📞 Contact Information</h3>
        <p><span class="label">Email:</span> <a href="mailto:{{.Data.Email}}">{{.Data.Email}}</a></p>
        <p><span class="label">Phone:</span> {{.Phone}}</p>
        {{if .Data.CV}}<p><span class="label">CV/Profile:</span> <a href="{{.Data.CV}}">{{.Data.CV}}</a></p>{{end}}
      </div>
      <div class="section">
        <p><strong>⏰ Received:</strong> {{.Timestamp}}</p>
        <p class="ref">Reference: {{.Reference}}</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

var researchConfirmTmpl = template.Must(template.New("research_confirm").Parse(`<div style="font-family: Arial; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, rgb(33, 47, 70) 0%, #228be6 100%); color: white; padding: 30px; text-align: center;">
    <h1>Thank You!</h1>
  </div>
  <div style="padding: 30px;">
    <p>Dear {{.Data.Name}},</p>
    <p>Thank you for your interest in collaborating with <strong>Kumaraguru Institutions</strong> on research initiatives.</p>
    <p>We received your expression of interest in the field of <strong>{{.Data.ResearchDomain}}</strong>.</p>
    <p><strong>Next Steps:</strong></p>
    <ul>
      <li>Review within 24-48 hours</li>
      <li>Our research team will contact you to discuss opportunities</li>
      <li>We'll share details about ongoing research projects and collaboration possibilities</li>
    </ul>
    <p>Contact: <a href="mailto:research@kumaraguru.edu.in">research@kumaraguru.edu.in</a></p>
    <p>Best regards,<br><strong>Research Collaboration Office</strong></p>
    <p style="color: #999; font-size: 12px;">Reference: {{.Reference}}</p>
  </div>
</div>
`))

var facultyStaffTmpl = template.Must(template.New("faculty_staff").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; }
    .container { max-width: 700px; margin: 0 auto; background: #f5f5f5; }
    .header { background: linear-gradient(135deg, rgb(33, 47, 70) 0%, #228be6 100%); color: white; padding: 30px; text-align: center; }
    .content { background: white; padding: 30px; }
    .section { margin-bottom: 20px; padding-bottom: 15px; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: rgb(33, 47, 70); }
    .engagement { background: #f0f7ff; padding: 15px; border-left: 3px solid rgb(33, 47, 70); margin: 10px 0; }
    .message-box { background: #f9f9f9; padding: 15px; border-left: 4px solid #228be6; margin: 10px 0; white-space: pre-wrap; }
    .ref { color: #999; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🌍 New Global Faculty Inquiry</h1>
      <p>Kumaraguru Global Engagement Office</p>
    </div>
    <div class="content">
      <div class="section">
        <h3>👤 Faculty Information</h3>
        <p><span class="label">Name:</span> <strong>{{.Data.Name}}</strong></p>
        <p><span class="label">Institution:</span> {{.Data.Institution}}</p>
        <p><span class="label">Country:</span> {{.Data.Country}}</p>
      </div>
      <div class="section">
        <h3>🎓 Expertise &amp; Background</h3>
        <p><span class="label">Area of Expertise:</span> {{.Data.Expertise}}</p>
      </div>
      <div class="section">
        <h3>🤝 Engagement Interests</h3>
        <div class="engagement">
          {{range .Selected}}<div>• {{.}}</div>
          {{else}}<p>No engagement types selected</p>{{end}}
        </div>
      </div>
      <div class="section">
        <h3>📞 Contact Information</h3>
        <p><span class="label">Email:</span> <a href="mailto:{{.Data.Email}}">{{.Data.Email}}</a></p>
      </div>
      {{if .Data.Message}}
      <div class="section">
        <h3>💬 Message</h3>
        <div class="message-box">{{.Data.Message}}</div>
      </div>
      {{end}}
      <div class="section">
        <p><strong>⏰ Received:</strong> {{.Timestamp}}</p>
        <p class="ref">Reference: {{.Reference}}</p>
      </div>
    </div>
  </div>
</body>
</html>
`))

var facultyConfirmTmpl = template.Must(template.New("faculty_confirm").Parse(`<div style="font-family: Arial; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, rgb(33, 47, 70) 0%, #228be6 100%); color: white; padding: 30px; text-align: center;">
    <h1>Thank You!</h1>
  </div>
  <div style="padding: 30px;">
    <p>Dear {{.Data.Name}},</p>
    <p>Thank you for your interest in <strong>Global Faculty Programs</strong> at Kumaraguru Institutions.</p>
    <p>We received your inquiry from <strong>{{.Data.Institution}}</strong>.</p>
    <p><strong>Next Steps:</strong></p>
    <ul>
      <li>Review within 24-48 hours</li>
      <li>We'll contact you to discuss engagement opportunities</li>
      <li>Share details about program structures and timelines</li>
    </ul>
    <p>Contact: <a href="mailto:geo@kumaraguru.edu.in">geo@kumaraguru.edu.in</a></p>
    <p>Best regards,<br><strong>Global Engagement Office</strong></p>
    <p style="color: #999; font-size: 12px;">Reference: {{.Reference}}</p>
  </div>
</div>
`))
