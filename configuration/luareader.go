// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gluamapper"

	"github.com/bitmark-inc/raffled/fault"
)

const tagName = "gluamapper"

// ParseConfigurationFile - read and execute a Lua file and map the
// returned table into config which must be a pointer to a struct
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for name, value := range variables {
		L.SetGlobal(name, lua.LString(value))
	}

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string { return s },
			TagName:  tagName,
		},
	}
	return mapper.Map(table, config)
}
