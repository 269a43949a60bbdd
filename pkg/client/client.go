package client

import (
	"time"

	"bookable/pkg/logger"
)

type Client struct {
	Mongo *MongoClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, connTimeout time.Duration) {
	c.Mongo = NewMongoClient(log, mongoURI, connTimeout)
}

// GracefulShutdown disconnects every configured backing client.
func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Mongo != nil {
		c.Mongo.Disconnect(log)
	}
}
