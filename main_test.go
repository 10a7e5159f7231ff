package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pds_http "github.com/oppenprint/docpress/service/http"
	"github.com/google/uuid"
)

func TestSubmitAndGetRenderJob(t *testing.T) {
	cfg := getTestCfg()
	server, cleanup := getTestServer(cfg)
	defer cleanup()

	req := pds_http.ReqSubmitRender{
		PageWidth: 10,
		Document:  json.RawMessage(`{"kind":"text","s":"hello"}`),
	}

	jReq, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}

	// Submit

	rr1 := httptest.NewRecorder()

	submitReq, err := http.NewRequest("POST", "/v1/renders", bytes.NewBuffer(jReq))
	if err != nil {
		t.Fatal(err)
	}
	submitReq.Header.Set("Content-Type", "application/json")

	server.Server.Handler.ServeHTTP(rr1, submitReq)

	if status := rr1.Code; status != http.StatusCreated {
		t.Fatalf("handler returned wrong status code: got %v want %v, error: %s", status, http.StatusCreated, rr1.Body)
	}

	submitRes := pds_http.ResSubmitRender{}
	if err := json.NewDecoder(rr1.Body).Decode(&submitRes); err != nil {
		t.Fatal(err)
	}

	AssertNotEqual(t, submitRes.ID, uuid.Nil)
	AssertEqual(t, submitRes.State, "pending")

	// Get

	rr2 := httptest.NewRecorder()

	getReq, err := http.NewRequest("GET", fmt.Sprintf("/v1/renders/%s", submitRes.ID), nil)
	if err != nil {
		t.Fatal(err)
	}

	server.Server.Handler.ServeHTTP(rr2, getReq)

	if status := rr2.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v, error: %s", status, http.StatusOK, rr2.Body)
	}

	getRes := pds_http.ResRenderJob{}
	if err := json.NewDecoder(rr2.Body).Decode(&getRes); err != nil {
		t.Fatal(err)
	}

	AssertEqual(t, getRes.ID, submitRes.ID)
	AssertEqual(t, getRes.PageWidth, uint(10))
}

func TestSyncRender(t *testing.T) {
	cfg := getTestCfg()
	server, cleanup := getTestServer(cfg)
	defer cleanup()

	req := pds_http.ReqSubmitRender{
		PageWidth: 10,
		Document:  json.RawMessage(`{"kind":"text","s":"hello"}`),
	}

	jReq, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()

	syncReq, err := http.NewRequest("POST", "/v1/renders?sync=true", bytes.NewBuffer(jReq))
	if err != nil {
		t.Fatal(err)
	}
	syncReq.Header.Set("Content-Type", "application/json")

	server.Server.Handler.ServeHTTP(rr, syncReq)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v, error: %s", status, http.StatusOK, rr.Body)
	}

	res := pds_http.ResRenderSync{}
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	AssertEqual(t, res.Output, "hello")
}
