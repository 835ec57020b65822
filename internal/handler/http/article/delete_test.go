package article_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsflow/internal/handler/http/article"
	"newsflow/internal/usecase/catalog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeleteHandler_Success(t *testing.T) {
	stub := newStubRepo()
	id := seedArticle(stub)
	handler := article.DeleteHandler{Svc: &catalog.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodDelete, "/articles/"+id.Hex(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := messageOf(t, rr.Body.Bytes()); got != "deleted" {
		t.Errorf("message = %q, want deleted", got)
	}
	if len(stub.articles) != 0 {
		t.Error("article still present after delete")
	}
}

func TestDeleteHandler_SecondDeleteReportsNotFound(t *testing.T) {
	stub := newStubRepo()
	id := seedArticle(stub)
	handler := article.DeleteHandler{Svc: &catalog.Service{Repo: stub}}

	for i, want := range []int{http.StatusOK, http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodDelete, "/articles/"+id.Hex(), nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != want {
			t.Fatalf("delete #%d: status code = %d, want %d", i+1, rr.Code, want)
		}
	}
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	handler := article.DeleteHandler{Svc: &catalog.Service{Repo: newStubRepo()}}

	req := httptest.NewRequest(http.MethodDelete, "/articles/zzz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDeleteHandler_StoreFailure(t *testing.T) {
	stub := newStubRepo()
	stub.err = errors.New("write concern error")
	handler := article.DeleteHandler{Svc: &catalog.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodDelete, "/articles/"+primitive.NewObjectID().Hex(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadGateway)
	}
}
