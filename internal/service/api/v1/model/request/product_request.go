package request

// DeleteProductRequest 상품 삭제 요청 (onDeleteProduct)
type DeleteProductRequest struct {
	// 삭제할 상품 ID
	ID int `param:"id" korean:"상품 ID"`

	// 사용자가 삭제를 확인했는지 여부. true가 아니면 삭제하지 않습니다.
	Confirm bool `query:"confirm" korean:"삭제 확인"`
}
