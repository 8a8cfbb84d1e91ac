package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /api/login.
type LoginResponse struct {
	Message string `json:"mensagem"`
	Token   string `json:"token"`
}

// ItemRequest is the body of POST /api/items and PUT /api/items/{id}.
//
// Fields are pointers so that an absent key is distinguishable from a zero
// value: both absence and an unparseable value are rejected the same way.
type ItemRequest struct {
	Name  *string `json:"name"`
	Price *Price  `json:"price"`
}

// ItemResponse is the resource payload returned for items, both in list
// responses and get-by-id responses.
type ItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LotRequest is the body of POST /api/lots and PUT /api/lots/{id}.
type LotRequest struct {
	Number     *string   `json:"number"`
	Quantity   *Quantity `json:"quantity"`
	ExpiryDate *Date     `json:"expiry_date"`
	ItemID     *int64    `json:"item_id"`
}

// LotResponse is the per-lot payload of the list endpoint.
type LotResponse struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	Quantity   int64  `json:"quantity"`
	ExpiryDate Date   `json:"expiry_date"`
	ItemID     int64  `json:"item_id"`
}

// LotDetailResponse is the payload of the get-by-id endpoint.
//
// It intentionally omits the lot number: existing API consumers depend on
// this response shape, so it is kept as-is rather than unified with
// [LotResponse].
type LotDetailResponse struct {
	ID         int64 `json:"id"`
	Quantity   int64 `json:"quantity"`
	ExpiryDate Date  `json:"expiry_date"`
	ItemID     int64 `json:"item_id"`
}

// MessageResponse is the generic success body: {"mensagem": "..."}.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// ErrorResponse is the generic error body: {"erro": "..."}.
type ErrorResponse struct {
	Error string `json:"erro"`
}
