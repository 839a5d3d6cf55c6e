// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package node

// Kind identifies the syntactic variant of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	KindInvalid Kind = iota
	KindModule
	KindClassDef
	KindFunctionDef
	KindLambda
	KindArg
	KindTry
	KindExceptHandler
	KindAssign
	KindAugAssign
	KindAnnAssign
	KindIf
	KindFor
	KindWhile
	KindWith
	KindWithItem
	KindReturn
	KindRaise
	KindPass
	KindBreak
	KindContinue
	KindExpr
	KindImport
	KindImportFrom
	KindGlobal
	KindNonlocal
	KindDelete
	KindAssert
	KindName
	KindAttribute
	KindSubscript
	KindTuple
	KindList
	KindSet
	KindDict
	KindComprehension
	KindBoolOp
	KindBinOp
	KindUnaryOp
	KindCompare
	KindCall
	KindKeyword
	KindConst
	KindIfExp
	KindStarred
	KindUnsupported
	KindMatch
	KindMatchCase

	numKinds
)

// KindCount is the number of distinct kinds, usable as an array bound for per-kind tables.
const KindCount = int(numKinds)

// ScopeIntroducing reports whether nodes of this kind open a new name scope.
func (k Kind) ScopeIntroducing() bool {
	switch k {
	case KindModule, KindClassDef, KindFunctionDef, KindLambda, KindComprehension:
		return true

	default:
		return false
	}
}

// Statement reports whether nodes of this kind are statements.
func (k Kind) Statement() bool {
	switch k {
	case KindModule, KindClassDef, KindFunctionDef, KindTry, KindAssign, KindAugAssign, KindAnnAssign,
		KindIf, KindFor, KindWhile, KindWith, KindReturn, KindRaise, KindPass, KindBreak, KindContinue,
		KindExpr, KindImport, KindImportFrom, KindGlobal, KindNonlocal, KindDelete, KindAssert, KindMatch:
		return true

	default:
		return false
	}
}
