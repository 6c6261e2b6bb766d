package card

import (
	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/widgets/contact"
	"card-frame/widgets/profile"
)

// Keys names the resources a card is assembled from
type Keys struct {
	Image            string
	ImageDescription string
	Name             string
	Title            string
	Phone            string
	PhoneIcon        string
	Email            string
	EmailIcon        string
	Handle           string
	HandleIcon       string
}

// DefaultKeys matches the resource names shipped with the stock card
var DefaultKeys = Keys{
	Image:            "android_logo",
	ImageDescription: "android_logo_image",
	Name:             "name_text",
	Title:            "title_text",
	Phone:            "mobile_no_text",
	PhoneIcon:        "phone_icon_text",
	Email:            "mail_address_text",
	EmailIcon:        "mail_icon_text",
	Handle:           "github_link_text",
	HandleIcon:       "github_icon_text",
}

// Load resolves the profile and the phone, email and handle entries (in that
// order). Any unknown key fails the whole load.
func Load(p resources.Provider, keys Keys) (profile.Data, []contact.Entry, error) {
	var (
		data profile.Data
		err  error
	)
	lookups := []struct {
		key string
		dst *string
	}{
		{keys.ImageDescription, &data.ImageDescription},
		{keys.Name, &data.Name},
		{keys.Title, &data.Title},
	}
	for _, l := range lookups {
		if *l.dst, err = p.ResolveString(l.key); err != nil {
			return profile.Data{}, nil, err
		}
	}
	data.ImageKey = keys.Image

	rows := []struct {
		icon        layout.Icon
		label, a11y string
	}{
		{layout.IconPhone, keys.Phone, keys.PhoneIcon},
		{layout.IconEmail, keys.Email, keys.EmailIcon},
		{layout.IconHandle, keys.Handle, keys.HandleIcon},
	}
	entries := make([]contact.Entry, 0, len(rows))
	for _, r := range rows {
		label, err := p.ResolveString(r.label)
		if err != nil {
			return profile.Data{}, nil, err
		}
		name, err := p.ResolveString(r.a11y)
		if err != nil {
			return profile.Data{}, nil, err
		}
		entries = append(entries, contact.Entry{Icon: r.icon, Label: label, AccessibilityName: name})
	}
	return data, entries, nil
}
