package stock

import "testing"

func TestCreateItemRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateItemRequest
		wantErr bool
	}{
		{"valid", CreateItemRequest{Name: "Stapler", Quantity: 10, UnitPrice: "49.90"}, false},
		{"zero quantity", CreateItemRequest{Name: "Stapler", Quantity: 0, UnitPrice: "49.90"}, false},
		{"empty name", CreateItemRequest{Name: " ", Quantity: 1, UnitPrice: "1.00"}, true},
		{"negative quantity", CreateItemRequest{Name: "Stapler", Quantity: -1, UnitPrice: "1.00"}, true},
		{"bad price", CreateItemRequest{Name: "Stapler", Quantity: 1, UnitPrice: "cheap"}, true},
		{"negative price", CreateItemRequest{Name: "Stapler", Quantity: 1, UnitPrice: "-1.00"}, true},
	}
	for _, c := range cases {
		err := c.req.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestUpdateQuantityRequestValidate(t *testing.T) {
	if err := (&UpdateQuantityRequest{Delta: 5}).Validate(); err != nil {
		t.Errorf("Validate(delta=5) = %v, want nil", err)
	}
	if err := (&UpdateQuantityRequest{Delta: -5}).Validate(); err != nil {
		t.Errorf("Validate(delta=-5) = %v, want nil", err)
	}
	if err := (&UpdateQuantityRequest{Delta: 0}).Validate(); err == nil {
		t.Error("Validate(delta=0) = nil, want error")
	}
}
