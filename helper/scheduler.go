package helper

import (
	"context"
	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	reportScheduler  gocron.Scheduler
	sessionScheduler *cron.Cron
)

func reportLocation() *time.Location {
	loc, err := time.LoadLocation(config.ConfigOr("REPORT_TIMEZONE", "Europe/Madrid"))
	if err != nil {
		log.Printf("Zona horaria no válida, usando UTC: %v", err)
		return time.UTC
	}
	return loc
}

// BuildOccupancyReports calcula la ocupación de todos los hoteles
func BuildOccupancyReports(ctx context.Context, db *gorm.DB) ([]model.HotelOccupancy, []model.Hotel, error) {
	var hotels []model.Hotel
	if err := db.WithContext(ctx).Order("id ASC").Find(&hotels).Error; err != nil {
		return nil, nil, err
	}
	store := database.NewStore(db)
	reports := make([]model.HotelOccupancy, 0, len(hotels))
	for _, h := range hotels {
		summary, err := store.HotelOccupancy(ctx, h)
		if err != nil {
			return nil, nil, err
		}
		reports = append(reports, summary)
	}
	return reports, hotels, nil
}

func SendOccupancyReports() {
	log.Println("[CRON] SendOccupancyReports triggered")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	reports, hotels, err := BuildOccupancyReports(ctx, database.DB)
	if err != nil {
		log.Printf("Error al calcular la ocupación: %v", err)
		return
	}
	date := time.Now().In(reportLocation()).Format("2006-01-02")
	for i, report := range reports {
		log.Printf("Ocupación %s: %d/%d habitaciones, %d huéspedes", report.Name, report.OccupiedRooms, report.TotalRooms, report.Guests)
		if !utils.MailConfigured() {
			continue
		}
		if err := utils.SendOccupancyReportEmail(hotels[i].Email, utils.OccupancyReportData{Date: date, Report: report}); err != nil {
			log.Printf("Error enviando el informe a %s: %v", hotels[i].Email, err)
		}
	}
}

func StartOccupancyReportScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(reportLocation()))
	if err != nil {
		log.Fatal(err)
	}
	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 30, 0),
			),
		),
		gocron.NewTask(SendOccupancyReports),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Occupancy report scheduler started (23:30)")
}

func StopOccupancyReportScheduler() {
	if reportScheduler != nil {
		if err := reportScheduler.Shutdown(); err != nil {
			log.Printf("Error al detener el scheduler de informes: %v", err)
		}
	}
}

func StartSessionCleanupScheduler() {
	sessionScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sessionScheduler.AddFunc("@hourly", func() {
		removed, err := PurgeExpiredSessions(database.DB, time.Now())
		if err != nil {
			log.Printf("Error purgando sesiones: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Eliminadas %d sesiones caducadas", removed)
		}
	})
	if err != nil {
		log.Printf("Error al iniciar el scheduler de sesiones: %v", err)
		return
	}

	sessionScheduler.Start()
	log.Println("Session cleanup scheduler started (hourly)")
}

func StopSessionCleanupScheduler() {
	if sessionScheduler != nil {
		sessionScheduler.Stop()
	}
}
