package formula

import "math"

// algo1 after yuruyurau, https://x.com/yuruyurau/status/1942231466446057727.
func algo1(i int, t float64) (float64, float64) {
	x, y := float64(i), float64(i)/235.0
	k := (4.0 + math.Sin(x/11.0+t*8.0)) * math.Cos(x/14.0)
	e := y/8.0 - 19.0
	d := math.Sqrt(k*k+e*e) + math.Sin(y/9.0+t*2.0)
	q := 2.0*math.Sin(k*2.0) + math.Sin(y/17.0)*k*(9.0+2.0*math.Sin(y-d*3.0))
	c := d*d/49.0 - t
	return q + 50.0*math.Cos(c) + 200.0, q*math.Sin(c) + 39.0*d - 440.0
}

// algo2 after yuruyurau, https://x.com/yuruyurau/status/1943684973199819135.
func algo2(i int, t float64) (float64, float64) {
	x, y := float64(i), float64(i)/41.0
	k := 5.0 * math.Cos(x/19.0) * math.Cos(y/30.0)
	e := y/8.0 - 12.0
	d := (k*k+e*e)/59.0 + 2.0
	q := 4.0*math.Sin(math.Atan2(k, e)*9.0) + 9.0*math.Sin(d-t) -
		k/d*(9.0+math.Sin(d*9.0-t*16.0)*3.0)
	c := d*d/7.0 - t
	return q + 50.0*math.Cos(c) + 200.0, q*math.Sin(c) + d*45.0 - 9.0
}

// algo3 after yuruyurau, https://x.com/yuruyurau/status/1936449579161092595.
func algo3(i int, t float64) (float64, float64) {
	x, y := float64(i), float64(i)/235.0
	k := (4.0 + math.Cos(y)) * math.Cos(x/4.0)
	e := y/8.0 - 20.0
	d := math.Sqrt(k*k + e*e)
	q := math.Sin(k*3.0) + math.Sin(y/19.0+9.0)*k*(6.0+math.Sin(e*14.0-d))
	c := d - t
	return q*math.Cos(d/8.0+t/4.0) + 50.0*math.Cos(c) + 200.0,
		q*math.Sin(c) + d*7.0*math.Sin(c/4.0) + 200.0
}

// algo4 after yuruyurau, https://x.com/yuruyurau/status/1933629116575855091.
func algo4(i int, t float64) (float64, float64) {
	x, y := float64(i), float64(i)/235.0
	k := (4.0 + math.Sin(y*2.0-t)*3.0) * math.Cos(x/29.0)
	e := y/8.0 - 13.0
	d := math.Sqrt(k*k + e*e)
	q := 3.0*math.Sin(k*2.0) +
		0.3/k +
		math.Sin(y/25.0)*k*(9.0+4.0*math.Sin(e*9.0-d*3.0+t*2.0))
	c := d - t
	return q + 30.0*math.Cos(c) + 200.0, q*math.Sin(c) + d*39.0 - 220.0
}

// algo5 after yuruyurau, https://x.com/yuruyurau/status/1927373647125119025.
func algo5(i int, t float64) (float64, float64) {
	x, y := math.Mod(float64(i), 200.0), float64(i)/55.0
	k := 9.0 * math.Cos(x/8.0)
	e := y/8.0 - 12.5
	d := (k*k+e*e)/99.0 + math.Sin(t)/6.0 + 0.5
	q := 99.0 - e*math.Sin(math.Atan2(k, e)*7.0)/d + k*(3.0+math.Cos(d*d-t)*2.0)
	c := d/2.0 + e/69.0 - t/16.0
	return q*math.Sin(c) + 200.0, (q+19.0*d)*math.Cos(c) + 200.0
}

// algo6 after yuruyurau, https://x.com/yuruyurau/status/1925557708817932636.
// k is exactly zero on the column i%100 == 50, so those points are infinite.
func algo6(i int, t float64) (float64, float64) {
	x, y := math.Mod(float64(i), 100.0), float64(i)/350.0
	k := x/4.0 - 12.5
	e := y / 9.0
	o := math.Sqrt(k*k+e*e) / 9.0
	q := 99.0 +
		3.0*(math.Tan(y/2.0)/2.0+math.Cos(y))/k +
		k*(3.0+math.Cos(y)/3.0+math.Sin(e+o*4.0-t*2.0))
	c := o/4.0 + e/4.0 - t/8.0
	return q*math.Cos(c)*math.Cos(c/2.0-e/3.0+t/8.0) + 200.0, q*math.Sin(c) + 200.0
}

// algo7 after yuruyurau, https://x.com/yuruyurau/status/1877743319205433558.
func algo7(i int, t float64) (float64, float64) {
	x, y := math.Mod(float64(i), 200.0), float64(i)/200.0
	k := x/8.0 - 12.5
	e := y/8.0 - 12.0
	o := 3.0 - math.Sqrt(k*k+e*e)/3.0
	d := -4.0 * (math.Sin(k/2.0) * math.Cos(e))
	return (x+e*math.Cos(t)+d*k*math.Sin(d+t))*0.7 + k*o + 130.0,
		(y-d*19.0+d*e*math.Cos(d+t))*0.7 + 130.0
}

// algo8 is a variation on the same post as algo7.
func algo8(i int, t float64) (float64, float64) {
	x, y := math.Mod(float64(i), 200.0), float64(i)/200.0
	k := x/8.0 - 12.5
	e := y/8.0 - 12.5
	o := math.Sqrt(k*k+e*e) / 12.0 * math.Cos(math.Sin(k/2.0)*math.Cos(e/2.0))
	d := 5.0 * math.Cos(o)
	return (x+d*k*(math.Sin(d*2.0+t)+math.Sin(y*o*o)/9.0))/1.5 + 133.0,
		(y/3.0-d*40.0+19.0*math.Cos(d+t))*1.5 + 300.0
}
