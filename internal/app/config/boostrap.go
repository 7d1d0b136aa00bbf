package config

import (
	"context"
	"log"
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WaitForSync != nil {
		done := make(chan struct{})
		go func() {
			b.WaitForSync()
			close(done)
		}()
		select {
		case <-done:
			log.Println("Successfully finished in-flight household sync")
		case <-ctx.Done():
			log.Println("Shutdown deadline reached before household sync finished")
		}
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
