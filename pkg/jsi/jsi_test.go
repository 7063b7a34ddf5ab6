// Released under an MIT license. See LICENSE.

package jsi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/jsi/pkg/jsi"
)

func evaluate(t *testing.T, src string, options ...jsi.Option) (jsi.Value, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return jsi.New(src, options...).Evaluate().Await(ctx)
}

func TestPrograms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected interface{}
	}{
		{
			name:     "return value",
			src:      `function crashTest () { return "zult" }; crashTest() `,
			expected: "zult",
		},
		{
			name:     "property on function",
			src:      ` function one() {};  one();  one.two = 3; one.two `,
			expected: 3.0,
		},
		{
			name:     "bind then call",
			src:      `(function(b, c, d) {return this.a + b + c + d}).bind({a: 1})(2, 3, 4)`,
			expected: 10.0,
		},
		{
			name:     "bind receiver",
			src:      ` var x = { x: 33 }; function y () { return this.x }; var z = y.bind(x); z(); `,
			expected: 33.0,
		},
		{
			name:     "new on bound function",
			src:      `function P(x) { this.x = x }; var B = P.bind(null, 4); new B().x`,
			expected: 4.0,
		},
		{
			name:     "chained bind name",
			src:      `function f() {} f.bind().bind().name`,
			expected: "bound bound f",
		},
		{
			name:     "chained bind",
			src:      `(function(){return arguments}).bind(null, 2).bind(null,3)(4,5)`,
			expected: map[string]interface{}{"0": 2.0, "1": 3.0, "2": 4.0, "3": 5.0},
		},
		{
			name: "partial application",
			src: `function binder(a,b,c,d){return a + b + c + d}; var half = binder.bind(null, 1,2);
				[half.bind(null,3,4)(),half(4,5)]`,
			expected: []interface{}{10.0, 12.0},
		},
		{
			name:     "apply",
			src:      `(function(b, c, d) {return this.a + b + c + d}).apply({a: 1}, [2,3,4])`,
			expected: 10.0,
		},
		{
			name:     "apply arguments",
			src:      ` var safari = function (a,b,c) { return a + b + c }; safari.apply(null,[1,2,3]) `,
			expected: 6.0,
		},
		{
			name:     "apply receiver",
			src:      ` var x = function () { return this.y }; var z = { y: 99 }; x.apply(z) `,
			expected: 99.0,
		},
		{
			name:     "call",
			src:      `(function(b, c, d) {return this.a + b + c + d}).call({a: 1}, 2, 3, 4)`,
			expected: 10.0,
		},
		{
			name:     "call receiver",
			src:      ` var crocodile = { swan: 55 }; function ghostbusters() { return this.swan }; ghostbusters.call(crocodile) `,
			expected: 55.0,
		},
		{
			name: "independent closures",
			src: ` function new_close() { var a = 1; return function() { a = a + 1;  return a } };
				var q = new_close(); q(); [q(),(new_close())()] `,
			expected: []interface{}{3.0, 2.0},
		},
		{
			name:     "basic closure",
			src:      ` var egg = function () { var squeegie = 'hawk'; return function () { return squeegie } }; var basket = egg(); basket(); `,
			expected: "hawk",
		},
		{
			name: "constructors",
			src: ` (function(){ function Jello () { this.anthropocene = 2; this.future = function () { this.anthropocene += 36; };
				this.whodunit = function () { return this.anthropocene; } } var petri = new Jello(); petri.future();
				var dish = new Jello(); dish.future(); dish.future(); return petri.whodunit() + dish.whodunit(); })() `,
			expected: 112.0,
		},
		{
			name: "nested closures",
			src: `  (function() { var a = 5; function electric () { return a }; function eel () { a++;
				return function () { var b = a++; return b }; }; var sunset = eel(); return sunset() + a + electric(); })() `,
			expected: 20.0,
		},
		{
			name:     "closure instances",
			src:      ` function snake () { var eggs = 0; return function () { return eggs++ } }; var salad = snake(); var sombrero = snake(); salad().toString()`,
			expected: "0",
		},
		{
			name: "closure instances are independent",
			src: ` function snake () { var eggs = 0; return function () { return eggs++ } }; var salad = snake(); var sombrero = snake();
				salad().toString() + salad().toString() + salad().toString() + sombrero().toString() + sombrero().toString() + sombrero().toString()`,
			expected: "012012",
		},
		{
			name:     "nested returns",
			src:      ` (function() { (function(){3 + 4})(); return (function() {return 5})()})() `,
			expected: 5.0,
		},
		{
			name:     "immediately invoked",
			src:      ` (function() { return "screw" })() `,
			expected: "screw",
		},
		{
			name:     "Function constructor",
			src:      ` var a = 5; var b = Function("return a"); b() `,
			expected: 5.0,
		},
		{
			name:     "Function constructor parameters",
			src:      `new Function("a", "b", "return a * b")(6, 7)`,
			expected: 42.0,
		},
		{
			name:     "hoisting",
			src:      `var r = early(); function early() { return typeof late } var late = 1; r`,
			expected: "undefined",
		},
		{
			name:     "arguments",
			src:      `(function (a) { return arguments.length + arguments[2] + a })(1, 2, 3)`,
			expected: 7.0,
		},
		{
			name:     "named function expression",
			src:      `var fact = function f(n) { return n < 2 ? 1 : n * f(n - 1) }; fact(5)`,
			expected: 120.0,
		},
		{
			name:     "implicit global",
			src:      `function f() { g = 4 } f(); g`,
			expected: 4.0,
		},
		{
			name:     "for loop",
			src:      `var s = 0; for (var i = 0; i < 10; i++) { if (i === 5) break; if (i % 2) continue; s += i; } s`,
			expected: 6.0,
		},
		{
			name:     "labelled continue",
			src:      `var n = 0; outer: for (var i = 0; i < 3; i++) { for (var j = 0; j < 3; j++) { if (j === 1) continue outer; n++; } } n`,
			expected: 3.0,
		},
		{
			name:     "labelled block",
			src:      `var n = 0; done: { n = 1; break done; n = 2; } n`,
			expected: 1.0,
		},
		{
			name:     "while loop",
			src:      `var i = 0; while (i < 7) i += 2; i`,
			expected: 8.0,
		},
		{
			name:     "do while loop",
			src:      `var i = 0; do { i++ } while (i < 5); i`,
			expected: 5.0,
		},
		{
			name:     "return from loop",
			src:      `(function () { for (;;) { return "out" } })()`,
			expected: "out",
		},
		{
			name:     "catch thrown value",
			src:      `try { throw 1 } catch (e) { e + 1 }`,
			expected: 2.0,
		},
		{
			name:     "catch reference error",
			src:      `try { nope } catch (e) { e.name }`,
			expected: "ReferenceError",
		},
		{
			name:     "catch across calls",
			src:      `function f() { throw new TypeError("bad") } try { f() } catch (e) { e.name + ": " + e.message }`,
			expected: "TypeError: bad",
		},
		{
			name:     "finally",
			src:      `var r = []; try { try { throw "x" } finally { r.push("f") } } catch (e) { r.push(e) } r`,
			expected: []interface{}{"f", "x"},
		},
		{
			name:     "finally after catch",
			src:      `var r = []; try { throw 1 } catch (e) { r.push("c") } finally { r.push("f") } r.join()`,
			expected: "c,f",
		},
		{
			name:     "finally value discarded",
			src:      `try { 1 } finally { 2 }`,
			expected: 1.0,
		},
		{
			name:     "return runs finally",
			src:      `var ran = false; (function () { try { return 1 } finally { ran = true } })(); ran`,
			expected: true,
		},
		{
			name:     "return value survives finally",
			src:      `(function () { try { return "t" } finally { "f" } })()`,
			expected: "t",
		},
		{
			name:     "return in finally wins",
			src:      `(function () { try { return 1 } finally { return 2 } })()`,
			expected: 2.0,
		},
		{
			name: "nested finally order",
			src: `var r = []; (function () { try { try { return } finally { r.push(1) } } finally { r.push(2) } })();
				r.join()`,
			expected: "1,2",
		},
		{
			name:     "return from catch runs finally",
			src:      `var r = []; (function () { try { throw 1 } catch (e) { return } finally { r.push("f") } })(); r.join()`,
			expected: "f",
		},
		{
			name:     "return leaves caller's try",
			src:      `var r = []; try { (function () { return 1 })(); r.push("a") } finally { r.push("f") } r.join()`,
			expected: "a,f",
		},
		{
			name:     "break runs finally",
			src:      `var ran = false; while (true) { try { break } finally { ran = true } } ran`,
			expected: true,
		},
		{
			name:     "continue runs finally",
			src:      `var n = 0; for (var i = 0; i < 3; i++) { try { continue } finally { n++ } } n`,
			expected: 3.0,
		},
		{
			name:     "labelled break runs finally",
			src:      `var r = []; outer: for (;;) { for (;;) { try { break outer } finally { r.push("in") } } } r.join()`,
			expected: "in",
		},
		{
			name:     "break inside try keeps finally outside loop",
			src:      `var r = []; try { while (true) { break } r.push("a") } finally { r.push("f") } r.join()`,
			expected: "a,f",
		},
		{
			name:     "catch call stack overflow",
			src:      `try { (function f() { return f() })() } catch (e) { e.name }`,
			expected: "RangeError",
		},
		{
			name:     "operators",
			src:      `[1 + "1", "3" * "4", 7 % 3, -7 >> 1, 1 << 4, 5 & 3, 5 | 3, 5 ^ 3, ~0, -1 >>> 28]`,
			expected: []interface{}{"11", 12.0, 1.0, -4.0, 16.0, 1.0, 7.0, 6.0, -1.0, 15.0},
		},
		{
			name:     "comparison",
			src:      `[1 < 2, "b" < "a", 2 >= 2, null == undefined, null === undefined, "1" == 1, "1" !== 1]`,
			expected: []interface{}{true, false, true, true, false, true, true},
		},
		{
			name:     "logical",
			src:      `[0 || "a", 1 && "b", !1, null || undefined]`,
			expected: []interface{}{"a", "b", false, nil},
		},
		{
			name:     "typeof",
			src:      `[typeof 1, typeof "s", typeof null, typeof {}, typeof function () {}, typeof undefined, typeof nope]`,
			expected: []interface{}{"number", "string", "object", "object", "function", "undefined", "undefined"},
		},
		{
			name:     "delete and in",
			src:      `var o = {a: 1, b: 2}; delete o.a; ["a" in o, "b" in o]`,
			expected: []interface{}{false, true},
		},
		{
			name:     "globals",
			src:      `[parseInt("42px"), parseInt("ff", 16), parseFloat("3.5e1x"), isNaN("x"), Math.max(1, 3, 2), Math.round(2.5), String(12), Number("7")]`,
			expected: []interface{}{42.0, 255.0, 35.0, true, 3.0, 3.0, "12", 7.0},
		},
		{
			name:     "strings",
			src:      `var s = "hello"; [s.length, s[1], s + "!"]`,
			expected: []interface{}{5.0, "e", "hello!"},
		},
		{
			name:     "arrays",
			src:      `var a = [1, 2]; a.push(3); a[5] = 6; [a.length, a.join("-")]`,
			expected: []interface{}{6.0, "1-2-3---6"},
		},
		{
			name:     "function export",
			src:      `function named() {} named`,
			expected: jsi.Function{Name: "named"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			v, err := evaluate(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Export())
		})
	}
}

func TestUndefinedArgument(t *testing.T) {
	v, err := evaluate(t, ` function test(a) { return a }; test(undefined); `)
	require.NoError(t, err)

	assert.True(t, v.IsUndefined())
	assert.False(t, v.IsNull())
	assert.Nil(t, v.Export())
}

func TestNull(t *testing.T) {
	v, err := evaluate(t, `null`)
	require.NoError(t, err)

	assert.True(t, v.IsNull())
	assert.False(t, v.IsUndefined())
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    jsi.Kind
		message string
	}{
		{
			name: "Function cannot see caller's scope",
			src:  ` function a () { var b = 5; var c = Function("return b"); return c(); }; a() `,
			kind: jsi.Reference,
		},
		{
			name:    "syntax error",
			src:     `function (`,
			kind:    jsi.Syntax,
			message: "SyntaxError: ",
		},
		{
			name:    "not a function",
			src:     `var o = {}; o.missing()`,
			kind:    jsi.Type,
			message: "TypeError: o.missing is not a function",
		},
		{
			name:    "property of undefined",
			src:     `var u; u.x`,
			kind:    jsi.Type,
			message: "TypeError: Cannot read property 'x' of undefined",
		},
		{
			name:    "uncaught value",
			src:     `throw new Error("boom")`,
			kind:    jsi.Thrown,
			message: "Uncaught Error: boom",
		},
		{
			name:    "uncaught primitive",
			src:     `throw 7`,
			kind:    jsi.Thrown,
			message: "Uncaught 7",
		},
		{
			name:    "rethrown after finally",
			src:     `try { throw "again" } finally { 1 }`,
			kind:    jsi.Thrown,
			message: "Uncaught 'again'",
		},
		{
			name:    "unsupported syntax",
			src:     `with ({}) {}`,
			kind:    jsi.Syntax,
			message: "SyntaxError: WithStatement is not supported",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluate(t, tt.src)
			require.Error(t, err)

			assert.True(t, jsi.Is(err, tt.kind), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestStrict(t *testing.T) {
	_, err := evaluate(t, `undeclared = 1`, jsi.Strict())
	require.Error(t, err)
	assert.Equal(t, jsi.Reference, jsi.KindOf(err))

	v, err := evaluate(t, `var declared; declared = 1`, jsi.Strict())
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Export())
}

func TestDeepRecursion(t *testing.T) {
	v, err := evaluate(t,
		`function down(n) { if (n === 0) return 0; return 1 + down(n - 1) } down(100000)`,
		jsi.MaxDepth(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, v.Export())
}

func TestMaxDepth(t *testing.T) {
	_, err := evaluate(t, `function f(n) { return f(n + 1) } f(0)`, jsi.MaxDepth(50))
	require.Error(t, err)

	assert.Equal(t, jsi.Range, jsi.KindOf(err))
	assert.Contains(t, err.Error(), "maximum call stack size exceeded")
}

func TestMaxSteps(t *testing.T) {
	_, err := evaluate(t, `while (true) {}`, jsi.MaxSteps(1000))
	require.Error(t, err)

	assert.Equal(t, jsi.Cancel, jsi.KindOf(err))
	assert.Contains(t, err.Error(), "step budget exhausted")
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	f := jsi.New(`try { for (;;) {} } catch (e) { "caught" }`).EvaluateContext(ctx)

	cancel()

	_, err := f.Await(context.Background())
	require.Error(t, err)

	assert.Equal(t, jsi.Cancel, jsi.KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThen(t *testing.T) {
	values := make(chan interface{}, 1)
	errs := make(chan error, 1)

	jsi.New(`"resolved"`).Evaluate().Then(func(v jsi.Value) {
		values <- v.Export()
	}, func(err error) {
		errs <- err
	})

	jsi.New(`throw "rejected"`).Evaluate().Then(func(v jsi.Value) {
		values <- v.Export()
	}, func(err error) {
		errs <- err
	})

	assert.Equal(t, "resolved", <-values)
	assert.True(t, jsi.Is(<-errs, jsi.Thrown))
}

func TestEvaluationsAreIndependent(t *testing.T) {
	i := jsi.New(`var n = typeof n === "number" ? n + 1 : 1; n`)

	for j := 0; j < 2; j++ {
		v, err := i.Evaluate().Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1.0, v.Export())
	}
}

func TestDone(t *testing.T) {
	f := jsi.New(`1`).Evaluate()

	select {
	case <-f.Done():
	case <-time.After(30 * time.Second):
		t.Fatal("evaluation did not complete")
	}

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}
