package inquiry

import (
	"fmt"

	"github.com/kumaraguru-geo/geo-portal-api/internal/mail"
)

func (p *Partnership) staff(rc renderContext) (mail.Message, error) {
	view := partnershipView{Data: p, Selected: selectedInterests(p.Interests), Timestamp: rc.Timestamp, Reference: rc.Reference}
	html, err := render(partnershipStaffTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-GEO Portal",
		ReplyTo:  p.Email,
		Subject:  fmt.Sprintf("Partnership Inquiry - %s (%s)", p.Institution, p.Country),
		HTML:     html,
	}, nil
}

func (p *Partnership) confirmation(rc renderContext) (mail.Message, error) {
	view := partnershipView{Data: p, Reference: rc.Reference}
	html, err := render(partnershipConfirmTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-GEO Team",
		Subject:  "Thank you - Kumaraguru Partnership Inquiry",
		HTML:     html,
	}, nil
}

func (c *Counseling) staff(rc renderContext) (mail.Message, error) {
	view := counselingView{Data: c, Timestamp: rc.Timestamp, Reference: rc.Reference}
	if c.Attachment != nil {
		view.AttachmentKB = fmt.Sprintf("%.2f KB", float64(c.Attachment.Size)/1024)
	}
	html, err := render(counselingStaffTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	msg := mail.Message{
		FromName: "K-GEO Counseling Portal",
		ReplyTo:  c.Email,
		Subject:  fmt.Sprintf("Counseling Request - %s | %s", c.Name, c.AreaOfInterest),
		HTML:     html,
	}
	if c.Attachment != nil && len(c.decoded) > 0 {
		name := c.Attachment.Name
		if name == "" {
			name = "attachment"
		}
		contentType := c.Attachment.Type
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		msg.Attachments = append(msg.Attachments, mail.Attachment{
			Filename:    name,
			Content:     c.decoded,
			ContentType: contentType,
		})
	}
	return msg, nil
}

func (c *Counseling) confirmation(rc renderContext) (mail.Message, error) {
	view := counselingView{Data: c, Reference: rc.Reference}
	html, err := render(counselingConfirmTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-GEO Team",
		Subject:  "Your Counseling Request Received - Kumaraguru Global Engagement",
		HTML:     html,
	}, nil
}

func (r *Research) staff(rc renderContext) (mail.Message, error) {
	phone := r.Phone
	if phone == "" {
		phone = "Not provided"
	}
	view := researchView{Data: r, Phone: phone, Timestamp: rc.Timestamp, Reference: rc.Reference}
	html, err := render(researchStaffTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-Research Portal",
		ReplyTo:  r.Email,
		Subject:  fmt.Sprintf("Research Inquiry - %s | %s", r.Name, r.ResearchDomain),
		HTML:     html,
	}, nil
}

func (r *Research) confirmation(rc renderContext) (mail.Message, error) {
	view := researchView{Data: r, Reference: rc.Reference}
	html, err := render(researchConfirmTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "Kumaraguru Research Office",
		Subject:  "Thank you - Kumaraguru Research Collaboration Inquiry",
		HTML:     html,
	}, nil
}

func (g *GlobalFaculty) staff(rc renderContext) (mail.Message, error) {
	view := facultyView{Data: g, Selected: selectedEngagements(g.Engagement), Timestamp: rc.Timestamp, Reference: rc.Reference}
	html, err := render(facultyStaffTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-GEO Portal",
		ReplyTo:  g.Email,
		Subject:  fmt.Sprintf("Global Faculty Inquiry - %s (%s)", g.Name, g.Country),
		HTML:     html,
	}, nil
}

func (g *GlobalFaculty) confirmation(rc renderContext) (mail.Message, error) {
	view := facultyView{Data: g, Reference: rc.Reference}
	html, err := render(facultyConfirmTmpl, view)
	if err != nil {
		return mail.Message{}, err
	}
	return mail.Message{
		FromName: "K-GEO Team",
		Subject:  "Thank you - Kumaraguru Global Faculty Inquiry",
		HTML:     html,
	}, nil
}
