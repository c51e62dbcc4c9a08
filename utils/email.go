package utils

import (
	"bytes"
	"errors"
	"hotel_manager/config"
	"hotel_manager/model"
	"html/template"
	"strconv"

	"gopkg.in/gomail.v2"
)

type OccupancyReportData struct {
	Date   string
	Report model.HotelOccupancy
}

var occupancyReportTemplate = template.Must(template.New("ocupacion").Parse(`<h2>Ocupación de {{.Report.Name}} ({{.Date}})</h2>
<p>{{.Report.OccupiedRooms}} de {{.Report.TotalRooms}} habitaciones ocupadas, {{.Report.Guests}} huéspedes alojados.</p>
<table border="1" cellpadding="4">
<tr><th>Habitación</th><th>Tipo</th><th>Ocupantes</th><th>Capacidad</th></tr>
{{range .Report.Rooms}}<tr><td>{{.Number}}</td><td>{{.Type}}</td><td>{{.Occupants}}</td><td>{{.Capacity}}</td></tr>
{{end}}</table>`))

func MailConfigured() bool {
	return config.Config("SMTP_HOST") != "" && config.Config("SMTP_FROM") != ""
}

func RenderOccupancyReport(data OccupancyReportData) (string, error) {
	var body bytes.Buffer
	if err := occupancyReportTemplate.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendOccupancyReportEmail envía el informe diario de ocupación al hotel
func SendOccupancyReportEmail(to string, data OccupancyReportData) error {
	if !MailConfigured() {
		return errors.New("SMTP no configurado")
	}
	body, err := RenderOccupancyReport(data)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Informe de ocupación "+data.Date+" - "+data.Report.Name)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
