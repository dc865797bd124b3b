package domain

// CollectionItem represents a piece of the marketing catalog.
type CollectionItem struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	Description string
}

// CollectionItems is the static maison catalog shown by the collection view.
var CollectionItems = []CollectionItem{
	{ID: "1", Name: "Vestido de Seda Imperial", Category: "Gala", Price: 3200, Description: "Fluidez impecável em seda pura, com drapeado manual exclusivo."},
	{ID: "2", Name: "Costume Italiano Super 150", Category: "Alfaiataria", Price: 4500, Description: "Corte slim em lã fria de altíssima gramatura."},
	{ID: "5", Name: "Camisa Linho Mistura", Category: "Essentiels", Price: 380, Description: "Leveza e frescor para o dia a dia, com acabamento em botões de madrepérola."},
	{ID: "6", Name: "T-Shirt Algodão Egípcio", Category: "Essentiels", Price: 195, Description: "Toque sedoso e durabilidade extrema. A base de qualquer guarda-roupa de luxo."},
	{ID: "3", Name: "Blazer Velvet D'Or", Category: "Casual Luxo", Price: 1850, Description: "Veludo alemão com botões banhados a ouro."},
	{ID: "7", Name: "Bermuda Chino Riviera", Category: "Essentiels", Price: 290, Description: "Corte clássico em sarja acetinada com elastano para máximo conforto."},
	{ID: "8", Name: "Gravata de Seda Artesanal", Category: "Acessórios", Price: 220, Description: "Padrões clássicos tecidos à mão, o detalhe final para sua elegância."},
	{ID: "4", Name: "Saia Plissée Riviera", Category: "Feminino", Price: 980, Description: "Leveza e movimento inspirado na costa francesa."},
}
