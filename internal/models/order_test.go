package models

import (
	"encoding/json"
	"testing"
)

func TestComputeTotalCents(t *testing.T) {
	cases := []struct {
		name  string
		items []OrderItem
		want  Cents
	}{
		{
			name:  "vide",
			items: nil,
			want:  0,
		},
		{
			name: "lignes simples",
			items: []OrderItem{
				{Name: "Croque", Price: Cents(1250), Quantity: 2},
				{Name: "Tarte", Price: Cents(450), Quantity: 1},
			},
			want: Cents(2950),
		},
		{
			name: "prix manquant remplacé par le prix de repli",
			items: []OrderItem{
				{Name: "Mystère", Price: 0, Quantity: 3},
			},
			want: DefaultItemPrice * 3,
		},
		{
			name: "quantité absente ou négative vaut 1",
			items: []OrderItem{
				{Name: "Quiche", Price: Cents(900), Quantity: 0},
				{Name: "Flan", Price: Cents(400), Quantity: -2},
			},
			want: Cents(1300),
		},
		{
			// 3 × 10.10 € doit donner exactement 30.30 €, pas 30.299999…
			name: "pas d'erreur d'arrondi flottant",
			items: []OrderItem{
				{Name: "Salade", Price: Cents(1010), Quantity: 3},
			},
			want: Cents(3030),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTotalCents(tc.items); got != tc.want {
				t.Errorf("ComputeTotalCents = %d, attendu %d", got, tc.want)
			}
		})
	}
}

func TestCreateOrderInputValidate(t *testing.T) {
	valid := CreateOrderInput{
		Email:        "client@example.com",
		CustomerName: "Jean Dupont",
		Address:      "12 rue de la Paix",
		Items:        []OrderItem{{Name: "Croque", Price: Cents(1250), Quantity: 1}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("entrée valide rejetée: %v", err)
	}

	noEmail := valid
	noEmail.Email = ""
	if err := noEmail.Validate(); err != ErrMissingFields {
		t.Errorf("email manquant: err = %v, attendu ErrMissingFields", err)
	}

	noItems := valid
	noItems.Items = nil
	if err := noItems.Validate(); err != ErrMissingFields {
		t.Errorf("items manquants: err = %v, attendu ErrMissingFields", err)
	}

	delivery := valid
	delivery.Pickup = false
	delivery.Address = ""
	if err := delivery.Validate(); err != ErrMissingAddress {
		t.Errorf("livraison sans adresse: err = %v, attendu ErrMissingAddress", err)
	}

	pickup := valid
	pickup.Pickup = true
	pickup.Address = ""
	if err := pickup.Validate(); err != nil {
		t.Errorf("retrait sans adresse rejeté: %v", err)
	}
}

func TestOrderItemUnmarshalLegacyString(t *testing.T) {
	var items []OrderItem
	raw := `["Croque Monsieur", {"name": "Tarte", "price": 4.50, "quantity": 2}]`
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("décodage: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, attendu 2", len(items))
	}
	if items[0].Name != "Croque Monsieur" || items[0].Price != 0 || items[0].Quantity != 1 {
		t.Errorf("ligne historique = %+v, attendu {Croque Monsieur 0 1}", items[0])
	}
	if items[1].Name != "Tarte" || items[1].Price != Cents(450) || items[1].Quantity != 2 {
		t.Errorf("ligne objet = %+v", items[1])
	}
}

func TestOrderItemUnmarshalIDAliases(t *testing.T) {
	var it OrderItem
	if err := json.Unmarshal([]byte(`{"id": "abc", "name": "Flan", "price": 4}`), &it); err != nil {
		t.Fatal(err)
	}
	if it.FoodID != "abc" {
		t.Errorf("FoodID = %q, attendu %q (clé \"id\" acceptée)", it.FoodID, "abc")
	}

	if err := json.Unmarshal([]byte(`{"food_id": "def", "name": "Flan", "price": 4}`), &it); err != nil {
		t.Fatal(err)
	}
	if it.FoodID != "def" {
		t.Errorf("FoodID = %q, attendu %q", it.FoodID, "def")
	}
}

func TestCentsJSON(t *testing.T) {
	cases := []struct {
		raw  string
		want Cents
	}{
		{`25.99`, Cents(2599)},
		{`"25.99"`, Cents(2599)}, // colonnes numeric historiques en chaîne
		{`0`, 0},
		{`""`, 0},
		{`10`, Cents(1000)},
	}
	for _, tc := range cases {
		var c Cents
		if err := json.Unmarshal([]byte(tc.raw), &c); err != nil {
			t.Errorf("Unmarshal(%s): %v", tc.raw, err)
			continue
		}
		if c != tc.want {
			t.Errorf("Unmarshal(%s) = %d, attendu %d", tc.raw, c, tc.want)
		}
	}

	var c Cents
	if err := json.Unmarshal([]byte(`"pas un nombre"`), &c); err == nil {
		t.Error("chaîne non numérique acceptée, erreur attendue")
	}

	out, err := json.Marshal(Cents(2599))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "25.99" {
		t.Errorf("Marshal(2599) = %s, attendu 25.99", out)
	}
}
