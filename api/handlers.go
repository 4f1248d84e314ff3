// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
)

type handler struct {
	log    *logger.L
	engine *raffle.Engine
}

// decode a base58 path parameter, replying 400 on failure
func identity(c *gin.Context, name string) (account.Identity, bool) {
	id, err := account.IdentityFromBase58(c.Param(name))
	if nil != err {
		fail(c, err)
		return account.Null, false
	}
	return id, true
}

// reply with the status matching the error class
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case fault.IsErrNotFound(err):
		status = http.StatusNotFound
	case fault.IsErrInvalid(err), fault.IsErrLength(err):
		status = http.StatusBadRequest
	case fault.NotAvailable == err:
		status = http.StatusNotImplemented
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *handler) pool(c *gin.Context) {
	id, ok := identity(c, "pool")
	if !ok {
		return
	}
	p, err := h.engine.Pool(id)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// hidden raffles are only listed with ?all=true
func (h *handler) raffles(c *gin.Context) {
	id, ok := identity(c, "pool")
	if !ok {
		return
	}
	raffles, err := h.engine.Raffles(id)
	if nil != err {
		fail(c, err)
		return
	}

	all := "true" == c.Query("all")
	list := make([]*raffle.Raffle, 0, len(raffles))
	for _, r := range raffles {
		if all || r.Visible {
			list = append(list, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{"raffles": list})
}

func (h *handler) raffle(c *gin.Context) {
	id, ok := identity(c, "raffle")
	if !ok {
		return
	}
	r, err := h.engine.Raffle(id)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *handler) spots(c *gin.Context) {
	id, ok := identity(c, "raffle")
	if !ok {
		return
	}
	spots, err := h.engine.Spots(id)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

func (h *handler) tickets(c *gin.Context) {
	id, ok := identity(c, "raffle")
	if !ok {
		return
	}

	start, err := strconv.ParseUint(c.DefaultQuery("start", "0"), 10, 32)
	if nil != err {
		fail(c, fault.InvalidCursor)
		return
	}
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(constants.DefaultCount)))
	if nil != err || count <= 0 || count > constants.MaximumCount {
		fail(c, fault.InvalidCount)
		return
	}

	total, err := h.engine.TicketCount(id)
	if nil != err {
		fail(c, err)
		return
	}
	buyers, err := h.engine.Tickets(id, uint32(start), count)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"buyers":    buyers,
		"nextStart": start + uint64(len(buyers)),
	})
}

func (h *handler) buyer(c *gin.Context) {
	id, ok := identity(c, "raffle")
	if !ok {
		return
	}
	buyer, ok := identity(c, "buyer")
	if !ok {
		return
	}
	n, err := h.engine.BuyerCount(id, buyer)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *handler) balance(c *gin.Context) {
	asset, ok := identity(c, "asset")
	if !ok {
		return
	}
	holder, ok := identity(c, "holder")
	if !ok {
		return
	}
	n, err := h.engine.Balance(asset, holder)
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": strconv.FormatUint(n, 10)})
}

func (h *handler) elapsed(c *gin.Context) {
	raffles, err := h.engine.Elapsed()
	if nil != err {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"raffles": raffles})
}
