/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */


// Package istringconst generates the definitions and the initializer for the interned-string constants
// declared in a C++ header (by default `istringconst.h`).
//
// The header declares the constants as static members of a class:
//
//	class IStringConst {
//	public:
//		static grinliz::IString kMain;
//		static grinliz::IString kUnit;
//		static void Init();
//	};
//
// And Generate writes the companion source (by default `istringconst.cpp`), with one definition per
// constant and an `IStringConst::Init()` that interns each name:
//
//	IString IStringConst::kMain;
//	...
//	void IStringConst::Init()
//	{
//		kMain = StringPool::Intern( "Main", true );
//		...
//	}
//
// The command-line front end is in cmd/istringconst_codegen, usually called with go:generate or from
// a build script in the directory of the header.
package istringconst

//go:generate go tool enumer -type=Mode -trimprefix=Mode -transform=lower mode.go
