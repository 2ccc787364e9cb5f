package mailing

import (
	"bytes"
	"html/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`<p>Hi {{.FirstName}},</p>
<p>Your account <b>{{.UserName}}</b> is ready. Start browsing recipes{{if .AppURL}} at <a href="{{.AppURL}}">{{.AppURL}}</a>{{end}}.</p>`))

const WelcomeSubject = "Welcome to Recipe API"

type WelcomeData struct {
	FirstName string
	UserName  string
	AppURL    string
}

func WelcomeBody(data WelcomeData) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
