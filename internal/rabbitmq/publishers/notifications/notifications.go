package notifications

import (
	"accounthub/internal/core/domain/account"
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/rabbitmq"
	"accounthub/internal/rabbitmq/schema"
	"context"
	"errors"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ queues outgoing account mail for the mailer worker. It
// implements both mail sender interfaces of the account domain.
type RabbitMQ struct {
	log             logging.Logger
	channel         *rabbitmq.Channel
	exchange        string
	routingKey      string
	verificationTTL time.Duration
	resetTTL        time.Duration
	now             func() time.Time
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	routingKey string,
	verificationTTL time.Duration,
	resetTTL time.Duration,
	now func() time.Time,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{
		log:             log,
		channel:         channel,
		exchange:        exchange,
		routingKey:      routingKey,
		verificationTTL: verificationTTL,
		resetTTL:        resetTTL,
		now:             now,
	}
}

func (s *RabbitMQ) SendVerificationMail(ctx context.Context, a account.Account) error {
	if !a.VerificationToken.IsPresent {
		return errors.New("account verification token is not defined")
	}
	return s.publish(ctx, &schema.EmailJob{
		Kind:           schema.KindVerification,
		RecipientName:  a.FirstName,
		RecipientEmail: string(a.Email),
		Token:          string(a.VerificationToken.Value),
		ExpiresAt:      s.now().Add(s.verificationTTL),
	})
}

func (s *RabbitMQ) SendResetMail(ctx context.Context, a account.Account, token account.ResetToken) error {
	return s.publish(ctx, &schema.EmailJob{
		Kind:           schema.KindPasswordReset,
		RecipientName:  a.FirstName,
		RecipientEmail: string(a.Email),
		Token:          string(token),
		ExpiresAt:      s.now().Add(s.resetTTL),
	})
}

func (s *RabbitMQ) publish(ctx context.Context, job *schema.EmailJob) error {
	body, err := job.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("kind", job.Kind),
	)
	return nil
}
