// Package vector maintains per-user qdrant collections of embedded chunks:
// one collection per user, chunk ids as point ids, chunk content embedded
// via OpenAI.
package vector

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
)

// Embedder turns texts into vectors. Implementations must return one vector
// per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Dimensions is the width of the vectors Embed returns.
	Dimensions() int
}

// OpenAIEmbedder embeds through the OpenAI embeddings API in batches.
type OpenAIEmbedder struct {
	client     openai.Client
	model      openai.EmbeddingModel
	dimensions int
	batchSize  int
}

func NewOpenAIEmbedder(cfg *config.EmbeddingsConfig, opts ...option.RequestOption) *OpenAIEmbedder {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = config.DefaultEmbeddingsConfig().BatchSize
	}
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &OpenAIEmbedder{
		client:     openai.NewClient(opts...),
		model:      openai.EmbeddingModel(cfg.Model),
		dimensions: cfg.Dimensions,
		batchSize:  batch,
	}
}

func (e *OpenAIEmbedder) Dimensions() int {
	return e.dimensions
}

// Embed sends texts in batches of the configured size and concatenates the
// results in input order.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += e.batchSize {
		end := min(start+e.batchSize, len(texts))
		resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
			Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts[start:end]},
			Model:      e.model,
			Dimensions: openai.Int(int64(e.dimensions)),
		})
		if err != nil {
			return nil, fmt.Errorf("embed batch at %d: %w", start, err)
		}
		if len(resp.Data) != end-start {
			return nil, fmt.Errorf("embed batch at %d: got %d embeddings for %d inputs", start, len(resp.Data), end-start)
		}
		for _, item := range resp.Data {
			vec := make([]float32, len(item.Embedding))
			for i, v := range item.Embedding {
				vec[i] = float32(v)
			}
			out = append(out, vec)
		}
	}
	return out, nil
}
