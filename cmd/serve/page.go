package main

const page = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>bikecharts</title>
<style>
body { font-family: sans-serif; margin: 1em; }
#scatter { cursor: crosshair; }
</style>
</head>
<body>
<div id="scatter"></div>
<p><button id="refresh">refresh</button></p>
<img src="/stations.svg" id="stations">
<script>
const root = document.getElementById("scatter");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
let pending = null;
function send(ev, pressed) {
	const rect = root.getBoundingClientRect();
	pending = {x: ev.clientX - rect.left, y: ev.clientY - rect.top, pressed: pressed};
	if (pressed) {
		ws.send(JSON.stringify(pending));
		pending = null;
	}
}
function tick() {
	if (pending && ws.readyState === WebSocket.OPEN) {
		ws.send(JSON.stringify(pending));
		pending = null;
	}
	requestAnimationFrame(tick);
}
ws.onopen = () => ws.send(JSON.stringify({x: -1, y: -1, pressed: false}));
ws.onmessage = (ev) => { root.innerHTML = ev.data; };
root.addEventListener("mousemove", (ev) => send(ev, false));
root.addEventListener("mousedown", (ev) => send(ev, true));
document.getElementById("refresh").addEventListener("click", () => {
	fetch("/refresh", {method: "POST"}).then(() => {
		document.getElementById("stations").src = "/stations.svg?" + Date.now();
		ws.send(JSON.stringify({x: -1, y: -1, pressed: false}));
	});
});
requestAnimationFrame(tick);
</script>
</body>
</html>
`
