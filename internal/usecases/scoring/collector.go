// Package scoring implementa o modelo de pontuação ponderada das rubricas:
// a coleta de notas por item e a agregação em score de categoria e score
// geral da avaliação.
package scoring

import (
	"github.com/pkg/errors"
)

// Limites da escala de notas de um item.
const (
	MinRating = 1
	MaxRating = 4
)

var ErrRatingOutOfRange = errors.New("nota fora do intervalo permitido (1-4)")

// Collector guarda o estado transitório de uma avaliação em preenchimento:
// o mapa de notas por item e os exemplos/comentários opcionais. É um objeto
// explícito com ciclo de vida definido, criado vazio e limpo após o envio.
type Collector struct {
	ratings  map[string]int
	examples map[string]string
}

func NewCollector() *Collector {
	return &Collector{
		ratings:  make(map[string]int),
		examples: make(map[string]string),
	}
}

// SetRating registra a nota de um item. Notas fora de 1-4 são rejeitadas.
func (c *Collector) SetRating(itemID string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.Wrapf(ErrRatingOutOfRange, "item %s, nota %d", itemID, rating)
	}

	c.ratings[itemID] = rating
	return nil
}

// Rating retorna a nota registrada para o item, se houver.
func (c *Collector) Rating(itemID string) (int, bool) {
	rating, ok := c.ratings[itemID]
	return rating, ok
}

// SetExample registra o exemplo/comentário livre de um item.
func (c *Collector) SetExample(itemID string, example string) {
	c.examples[itemID] = example
}

func (c *Collector) Example(itemID string) string {
	return c.examples[itemID]
}

// Ratings retorna uma cópia do mapa de notas.
func (c *Collector) Ratings() map[string]int {
	out := make(map[string]int, len(c.ratings))
	for id, rating := range c.ratings {
		out[id] = rating
	}
	return out
}

// Examples retorna uma cópia do mapa de exemplos.
func (c *Collector) Examples() map[string]string {
	out := make(map[string]string, len(c.examples))
	for id, example := range c.examples {
		out[id] = example
	}
	return out
}

// Len retorna a quantidade de itens com nota.
func (c *Collector) Len() int {
	return len(c.ratings)
}

// Clear descarta todo o estado coletado. Chamado após o envio com sucesso
// ou no cancelamento da avaliação.
func (c *Collector) Clear() {
	c.ratings = make(map[string]int)
	c.examples = make(map[string]string)
}
