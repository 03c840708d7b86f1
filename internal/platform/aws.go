package platform

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ErrEmptyParameter is returned when a parameter exists but holds no value.
var ErrEmptyParameter = errors.New("parameter has no value")

// ParameterGetter is the part of the SSM client used to read parameters.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ParameterStore reads decrypted values from AWS Systems Manager Parameter Store.
type ParameterStore struct {
	client  ParameterGetter
	timeout time.Duration
}

// NewParameterStore builds a store from the default AWS configuration chain.
func NewParameterStore() (*ParameterStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return NewParameterStoreWithClient(ssm.NewFromConfig(cfg)), nil
}

// NewParameterStoreWithClient wraps an existing client.
func NewParameterStoreWithClient(client ParameterGetter) *ParameterStore {
	return &ParameterStore{client: client, timeout: 10 * time.Second}
}

// Get returns the decrypted value stored under key.
func (s *ParameterStore) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	paramOutput, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(key),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if paramOutput.Parameter == nil || aws.ToString(paramOutput.Parameter.Value) == "" {
		return "", ErrEmptyParameter
	}

	return aws.ToString(paramOutput.Parameter.Value), nil
}
