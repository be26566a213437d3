package emailnotifications

import (
	e "accounthub/internal/core/domain/errors"
	"accounthub/internal/core/domain/logging"
	"accounthub/internal/implementations/email"
	"accounthub/internal/rabbitmq"
	"accounthub/internal/rabbitmq/schema"
	"context"

	"github.com/golang-module/carbon/v2"
	"github.com/rabbitmq/amqp091-go"
)

// Consumer drains queued mail jobs and delivers them through SES.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	sender  *email.Sender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sender *email.Sender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			job := &schema.EmailJob{}
			if err := job.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal email job.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got email job.",
				logging.Entry("kind", job.Kind),
				logging.Entry("recipient", job.RecipientEmail),
			)
			if err := c.send(context.Background(), job); err != nil {
				c.log.Error(
					context.Background(),
					"Could not send email.",
					logging.Entry("kind", job.Kind),
					logging.Entry("recipient", job.RecipientEmail),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) send(ctx context.Context, job *schema.EmailJob) error {
	expiresIn := carbon.Time2Carbon(job.ExpiresAt).DiffForHumans()
	switch job.Kind {
	case schema.KindVerification:
		return c.sender.SendVerification(ctx, job.RecipientName, job.RecipientEmail, job.Token, expiresIn)
	case schema.KindPasswordReset:
		return c.sender.SendPasswordReset(ctx, job.RecipientName, job.RecipientEmail, job.Token, expiresIn)
	}
	c.log.Warning(ctx, "Unknown email job kind.", logging.Entry("kind", job.Kind))
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
