package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-assettrack/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeEmailLookup resolves the notification address for an employee.
type EmployeeEmailLookup interface {
	FindEmailByID(ctx context.Context, companyID, employeeID uint) (string, error)
}

// Mailer is the outbound email collaborator.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsumeAssetAssignments notifies employees when assets land on them. A
// failed notification is retried on the next fetch because the offset is only
// committed after a successful send.
func ConsumeAssetAssignments(
	ctx context.Context,
	reader *kafkago.Reader,
	employees EmployeeEmailLookup,
	mailer Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.asset_assignment")
	log.Info("asset assignment consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("asset assignment consumer stopped")
				return
			}
			log.Error("fetch asset assignment message failed", zap.Error(err))
			continue
		}

		var event events.AssetAssignedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode asset_assigned event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		email, err := employees.FindEmailByID(ctx, event.CompanyID, event.EmployeeID)
		if err != nil {
			// Karyawan bisa saja sudah dihapus setelah event dipublish
			log.Warn("employee for assignment event not found, skipping",
				zap.Uint("employee_id", event.EmployeeID),
				zap.Uint("company_id", event.CompanyID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		subject := "Assets assigned to you"
		body := fmt.Sprintf("%d %s asset(s) were assigned to you on %s.",
			len(event.AssetIDs), event.AssetKind, event.OccurredAt.Format("2006-01-02"))

		if err := mailer.Send(ctx, email, subject, body); err != nil {
			log.Error("send assignment notification failed",
				zap.Uint("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit asset assignment message failed", zap.Error(err))
			continue
		}

		log.Info("assignment notification sent",
			zap.Uint("employee_id", event.EmployeeID),
			zap.Uint("company_id", event.CompanyID),
		)
	}
}
