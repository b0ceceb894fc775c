package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storefront"
	"github.com/goliatone/go-storefront/pkg/checkout"
	"github.com/goliatone/go-storefront/pkg/renderers/tui"
)

// scriptedDriver answers prompts by label. Each label holds a queue of
// answers; an exhausted queue accepts the prompt default like pressing enter.
type scriptedDriver struct {
	answers map[string][]string
	selects []int
	infos   []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	queue := d.answers[cfg.Message]
	if len(queue) == 0 {
		return cfg.Default, nil
	}
	d.answers[cfg.Message] = queue[1:]
	return queue[0], nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return -1, errors.New("no selection scripted")
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return idx, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func newTestStore(t *testing.T) *storefront.Storefront {
	t.Helper()
	store, err := storefront.New()
	if err != nil {
		t.Fatalf("new storefront: %v", err)
	}
	return store
}

func decodeOrder(t *testing.T, out *bytes.Buffer) order {
	t.Helper()
	var got order
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode order %s: %v", out.String(), err)
	}
	return got
}

func TestRunCheckout_PrefillsAddressFromCEP(t *testing.T) {
	store := newTestStore(t)
	driver := &scriptedDriver{
		selects: []int{0},
		answers: map[string][]string{
			"CEP":      {"01310100"},
			"Número":   {"1000"},
			"Telefone": {"11987654321"},
		},
	}

	var out bytes.Buffer
	err := runCheckout(context.Background(), store, checkoutOptions{attempts: 1, confirm: true, driver: driver}, &out, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	got := decodeOrder(t, &out)
	want := order{
		Product: store.Products()[0].ID,
		Address: map[string]string{
			checkout.FieldCEP:        "01310100",
			checkout.FieldStreet:     "Avenida Paulista",
			checkout.FieldNumber:     "1000",
			checkout.FieldComplement: "",
			checkout.FieldDistrict:   "Bela Vista",
			checkout.FieldCity:       "São Paulo",
			checkout.FieldUF:         "SP",
			checkout.FieldPhone:      "11987654321",
		},
		Notice: checkout.NoticeConfirmed,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCheckout_PromptsAgainAfterErrors(t *testing.T) {
	store := newTestStore(t)
	driver := &scriptedDriver{
		selects: []int{1},
		answers: map[string][]string{
			"CEP":      {"20040020"},
			"Número":   {"90"},
			"Telefone": {"2199", "21998765432"},
		},
	}

	var out bytes.Buffer
	err := runCheckout(context.Background(), store, checkoutOptions{attempts: 2, driver: driver}, &out, nil)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	got := decodeOrder(t, &out)
	if got.Product != store.Products()[1].ID {
		t.Fatalf("product = %q, want %q", got.Product, store.Products()[1].ID)
	}
	if got.Address[checkout.FieldPhone] != "21998765432" || got.Address[checkout.FieldCity] != "Rio de Janeiro" {
		t.Fatalf("unexpected address %+v", got.Address)
	}

	var sawError bool
	for _, msg := range driver.infos {
		if msg == "Telefone: Telefone inválido" {
			sawError = true
		}
	}
	if !sawError {
		t.Fatalf("expected the phone error to be shown, infos: %v", driver.infos)
	}
}

func TestRunCheckout_GivesUpAfterAttempts(t *testing.T) {
	store := newTestStore(t)
	driver := &scriptedDriver{
		selects: []int{0},
		answers: map[string][]string{
			"CEP":      {"01310100"},
			"Número":   {"1000"},
			"Telefone": {"1", "2"},
		},
	}

	var out bytes.Buffer
	err := runCheckout(context.Background(), store, checkoutOptions{attempts: 2, driver: driver}, &out, nil)
	if !errors.Is(err, errCheckoutRejected) {
		t.Fatalf("err = %v, want errCheckoutRejected", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no order output, got %s", out.String())
	}
}
