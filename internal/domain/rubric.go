// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// CategoryKind classifica uma categoria da rubrica de forma explícita,
// resolvida uma única vez na ingestão dos dados. Substitui o antigo
// matching por substring espalhado pelas telas de analytics.
type CategoryKind string

const (
	KindSalesBehavior CategoryKind = "sales_behavior"
	KindCoaching      CategoryKind = "coaching"
	KindUnknown       CategoryKind = "unknown"
)

// Chaves canônicas das categorias de comportamento de venda.
const (
	CategoryPreparation       = "preparation"
	CategoryProblemDefinition = "problem_definition"
	CategoryObjections        = "objections"
	CategoryCommercial        = "commercial"
)

// Chaves canônicas das categorias de coaching. Nunca são mescladas com as
// categorias de comportamento de venda.
const (
	CategoryObservation = "observation"
	CategoryEnvironment = "environment"
	CategoryFeedback    = "feedback"
	CategoryAction      = "action"
)

// Tipos de cliente (share of wallet) que selecionam a variante da rubrica.
const (
	CustomerTypeLow  = "low"
	CustomerTypeMid  = "mid"
	CustomerTypeHigh = "high"
)

// Item é um comportamento avaliado dentro de uma categoria, com nota de 1 a 4.
// As quatro descrições correspondem aos níveis 1-4 e são exibidas após a
// seleção da nota.
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Descriptions [4]string `json:"descriptions"`
}

// Category é um agrupamento ponderado de itens dentro de uma rubrica.
// Os pesos são informativos: não precisam somar 1, o agregador renormaliza.
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Weight    float64      `json:"weight"`
	Kind      CategoryKind `json:"kind"`
	Canonical string       `json:"canonical"`
	Items     []Item       `json:"items"`
}

// Rubric é a definição estática de categorias e itens para uma combinação
// de role e tipo de cliente.
type Rubric struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	RoleID       int        `json:"role_id"`
	CustomerType string     `json:"customer_type"`
	Categories   []Category `json:"categories"`
}

// ItemCount retorna o total de itens avaliáveis da rubrica.
func (r *Rubric) ItemCount() int {
	total := 0
	for _, c := range r.Categories {
		total += len(c.Items)
	}
	return total
}

// CategoryLookup monta a tabela itemID -> chave canônica da categoria a
// partir da própria definição da rubrica. É a fonte autoritativa para a
// normalização de categorias nos dashboards.
func (r *Rubric) CategoryLookup() map[string]string {
	lookup := make(map[string]string, r.ItemCount())
	for _, c := range r.Categories {
		key := c.Canonical
		if key == "" {
			key = c.Name
		}
		for _, item := range c.Items {
			lookup[item.ID] = key
		}
	}
	return lookup
}
