//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builder

import (
	_ "orgpress.de/op/encoder/htmlenc" // Allow to use HTML encoder.
	_ "orgpress.de/op/encoder/jsonenc" // Allow to use JSON encoder.
	_ "orgpress.de/op/encoder/szenc"   // Allow to use Sz encoder.
	_ "orgpress.de/op/encoder/textenc" // Allow to use text encoder.
	_ "orgpress.de/op/parser/markdown" // Allow to use markdown parser.
	_ "orgpress.de/op/parser/orgmark"  // Allow to use orgmark parser.
	_ "orgpress.de/op/parser/plain"    // Allow to use plain parser.
)
