package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/farel129/bapelit-be-sub000/config"
	"github.com/farel129/bapelit-be-sub000/utils/events"
	"github.com/farel129/bapelit-be-sub000/utils/mailer"
)

// StartConsumer drains the disposisi event bus and emails the next recipient.
// Delivery is best-effort: a failed send is logged and the event dropped, the
// workflow itself never depends on it.
func StartConsumer(ctx context.Context, appCfg config.AppConfig) {
	log.Println("✅ Disposisi notifier started")

	mailClient := mailer.NewClient(config.LoadEmailConfig())

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.DisposisiEventBus:
			// Goroutine agar tidak blocking
			go func(event events.DisposisiEvent) {
				if event.TargetEmail == "" {
					return
				}

				link := fmt.Sprintf("%s/disposisi/%s", appCfg.FrontendBaseURL, event.Disposisi.ID)

				var dari string
				switch event.Type {
				case events.DisposisiCreated:
					dari = event.Disposisi.DariNama
				case events.DisposisiDiteruskan:
					dari = event.Disposisi.DisposisiKepadaJabatan
				}

				if err := mailClient.SendDisposisiNotification(event.TargetEmail, event.Disposisi.Perihal, dari, link); err != nil {
					log.Printf("failed to send disposisi notification to %s: %v", event.TargetEmail, err)
				}
			}(e)
		}
	}
}
