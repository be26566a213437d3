package main

import (
	"accounthub/internal/app/deps"
	"accounthub/internal/core/domain/logging"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting email notification consumer.",
		logging.Entry("queue", deps.Config.RabbitmqEmailQueue),
	)
	if err := deps.MailConsumer.Consume(); err != nil {
		log.Error(context.Background(), "Could not start email notification consumer.", logging.Entry("err", err))
		panic(err)
	}

	<-stopCh
	log.Info(context.Background(), "Stopping email notification consumer.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
