package utils

import (
	"context"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the service logger. When elasticUrl is empty the logger
// writes JSON to stdout only; otherwise every entry is also indexed into
// Elasticsearch (index name taken from the URL's index query parameter).
func NewLogger(elasticUrl, serviceName string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if elasticUrl == "" {
		return config.Build()
	}

	u, err := url.Parse(elasticUrl)
	if err != nil {
		return nil, err
	}

	indexName := u.Query().Get("index")
	password, _ := u.User.Password()
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{u.Scheme + "://" + u.Host},
		Username:  u.User.Username(),
		Password:  password,
	})
	if err != nil {
		return nil, err
	}

	encoder := zapcore.NewJSONEncoder(config.EncoderConfig)
	esWriter := &ElasticWriter{client: esClient, indexName: indexName}
	consoleCore := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), config.Level)
	elasticCore := zapcore.NewCore(encoder, zapcore.AddSync(esWriter), config.Level)

	logger := zap.New(zapcore.NewTee(consoleCore, elasticCore))
	return logger.With(zap.String("service", serviceName)), nil
}

// ElasticWriter implements zapcore.WriteSyncer interface
type ElasticWriter struct {
	client    *elasticsearch.Client
	indexName string
}

func (ew *ElasticWriter) Write(p []byte) (n int, err error) {
	_, err = ew.client.Index(
		ew.indexName,
		strings.NewReader(string(p)),
		ew.client.Index.WithContext(context.Background()),
		ew.client.Index.WithDocumentID(strconv.Itoa(int(time.Now().UnixNano()))),
	)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

func (ew *ElasticWriter) Sync() error {
	return nil
}
