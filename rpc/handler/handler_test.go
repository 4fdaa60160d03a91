// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/chain"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/mode"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/handler"
	"github.com/bitmark-inc/heritaged/rpc/mocks"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

// httptest requests come from 192.0.2.1
func allowTestClient(h handler.Handler, path string) {
	_, ipNet, _ := net.ParseCIDR("192.0.2.1/32")
	h.SetAllow(map[string][]*net.IPNet{
		path: {ipNet},
	})
}

func newHandler(t *testing.T, maximum uint64) (handler.Handler, *mocks.MockHandler, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockHandler(ctl)

	s := rpc.NewServer()
	_ = s.Register(Add{})

	h := handler.New(
		logger.New(fixtures.LogCategory),
		s,
		l,
		time.Now(),
		"1.0",
		maximum,
	)
	return h, l, ctl
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) eResp {
	var j eResp
	err := json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Nil(t, err, "wrong error JSON")
	return j
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	j := decodeError(t, w)
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()

	add := AddArg{
		A: 1,
		B: 2,
	}
	data, _ := json.Marshal(jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 0)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	assert.Equal(t, tooManyRequests, decodeError(t, w).Error, "wrong error")
}

func TestRPCWhenEmptyBody(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	b, _ := ioutil.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	h, l, ctl := newHandler(t, 5)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowDetails)

	l.EXPECT().Height().Return(uint64(1234)).Times(1)
	l.EXPECT().LastEventID().Return(uint64(17)).Times(1)
	l.EXPECT().Roles().Return(record.RoleConfig{Paused: true}).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/heritaged/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var reply handler.DetailsReply
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong JSON")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(1234), reply.Height, "wrong height")
	assert.Equal(t, uint64(17), reply.LastEventId, "wrong last event")
	assert.True(t, reply.Paused, "wrong paused")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowEvents)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, "forbidden", decodeError(t, w).Error, "wrong not allow")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, 5)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowEvents)

	events := []record.Event{
		{Id: 4, Type: record.VoteCast, SubjectId: 1, Actor: fixtures.Alice, Payload: "for=true weight=10", Height: 101},
		{Id: 5, Type: record.VoteCast, SubjectId: 1, Actor: fixtures.Bob, Payload: "for=false weight=5", Height: 102},
	}
	l.EXPECT().Events(uint64(4), 2).Return(events, nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/heritaged/events?start=4&count=2", nil)
	w := httptest.NewRecorder()
	h.Events(w, req)

	var reply handler.EventsReply
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong JSON")
	assert.Equal(t, events, reply.Events, "wrong events")
	assert.Equal(t, uint64(6), reply.NextStart, "wrong next start")
}

func TestEventsDefaults(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, 5)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowEvents)

	l.EXPECT().Events(uint64(1), 10).Return([]record.Event{}, nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/heritaged/events", nil)
	w := httptest.NewRecorder()
	h.Events(w, req)

	var reply handler.EventsReply
	_ = json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Equal(t, 0, len(reply.Events), "wrong event count")
	assert.Equal(t, uint64(1), reply.NextStart, "next start must not move")
}

func TestEventsWhenBadCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 5)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowEvents)

	for _, query := range []string{"count=0", "count=101", "count=x", "start=-1"} {
		req := httptest.NewRequest("GET", "http://test.com/heritaged/events?"+query, nil)
		w := httptest.NewRecorder()
		h.Events(w, req)

		j := decodeError(t, w)
		assert.Equal(t, http.StatusBadRequest, j.Code, "query: %s", query)
	}
}

func TestEventsWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, 0)
	defer ctl.Finish()
	allowTestClient(h, handler.AllowEvents)

	req := httptest.NewRequest("GET", "http://test.com/heritaged/events", nil)
	w := httptest.NewRecorder()
	h.Events(w, req)

	assert.Equal(t, tooManyRequests, decodeError(t, w).Error, "wrong error")
}
